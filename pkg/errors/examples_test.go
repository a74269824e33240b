package errors_test

import (
	"fmt"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := &errors.NotFoundError{
		Resource: "book",
		ID:       "book-V1StGXR8",
	}

	if errors.IsNotFound(err) {
		fmt.Println("Book not found")
	}

	// Output: Book not found
}

// Example_staleIndex shows how a caller recovers from a position that
// shifted after an earlier removal.
func Example_staleIndex() {
	err := fmt.Errorf("remove: %w", errors.NewIndexOutOfRangeError(3, 2))

	if errors.IsIndexOutOfRange(err) {
		fmt.Println("Refresh the list and try again")
	}

	// Output: Refresh the list and try again
}
