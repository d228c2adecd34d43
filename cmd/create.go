package cmd

import "fmt"

// Create makes a new empty vault under the default vault directory.
func Create(name string) {
	app := NewApp()
	defer app.Close()

	if err := app.Service.Create(name); err != nil {
		HandleError(err)
	}
	fmt.Printf("Created vault %s\n", app.Service.Session().Path())
}
