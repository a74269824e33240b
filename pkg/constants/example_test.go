package constants_test

import (
	"fmt"
	"time"

	"github.com/agentstation/bookshelf/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	fmt.Printf("Library file: %s\n", constants.DefaultLibraryFile)
	fmt.Printf("Dir permissions: %o\n", constants.DirPermissions)
	fmt.Printf("File permissions: %o\n", constants.FilePermissions)
	// Output:
	// Library file: library.json
	// Dir permissions: 755
	// File permissions: 644
}

// Example_addedDate demonstrates the durable timestamp layout
func Example_addedDate() {
	t := time.Date(2024, time.March, 9, 14, 5, 0, 0, time.UTC)
	fmt.Println(t.Format(constants.AddedDateLayout))
	// Output: 2024-03-09 14:05:00
}
