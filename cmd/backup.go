package cmd

import (
	"fmt"
	"os"

	"github.com/illarion/pocketvault/internal/backup"
	"github.com/illarion/pocketvault/internal/vaultfile"
)

// Backup manages spare copies of vault containers. Backups are taken and
// restored as sealed containers, so no passphrase is needed.
func Backup(op, name, vaultPath string) {
	app := NewApp()
	defer app.Close()

	svc := backup.New(app.Config.Storage.BackupDir, vaultfile.DefaultLayout())

	switch op {
	case "save":
		data, err := app.Store.ReadBytes(vaultPath)
		if err != nil {
			HandleError(err)
		}
		if err := svc.Write(name, data); err != nil {
			HandleError(err)
		}
		fmt.Printf("Backed up %s as %s\n", vaultPath, name)

	case "restore":
		data, err := svc.Read(name)
		if err != nil {
			HandleError(err)
		}
		if app.Store.Exists(vaultPath) {
			if !app.Prompter.Confirm(fmt.Sprintf("Overwrite %s with backup %s?", vaultPath, name)) {
				fmt.Println("Aborted")
				return
			}
		}
		if err := app.Store.WriteBytes(vaultPath, data); err != nil {
			HandleError(err)
		}
		app.Store.Invalidate(app.Store.Parent(vaultPath))
		fmt.Printf("Restored %s from backup %s\n", vaultPath, name)

	case "list":
		names, err := svc.List()
		if err != nil {
			HandleError(err)
		}
		if len(names) == 0 {
			fmt.Println("No backups")
			return
		}
		for _, n := range names {
			fmt.Println(n)
		}

	case "delete":
		if err := svc.Delete(name); err != nil {
			HandleError(err)
		}
		fmt.Printf("Deleted backup %s\n", name)

	default:
		fmt.Fprintf(os.Stderr, "Unknown backup operation: %s\n", op)
		os.Exit(1)
	}
}
