package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/illarion/pocketvault/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		runCreate(os.Args[2:])
	case "open":
		runOpen(os.Args[2:])
	case "ls":
		runLs(os.Args[2:])
	case "add":
		runAdd(os.Args[2:])
	case "rm":
		runRm(os.Args[2:])
	case "save":
		runSave(os.Args[2:])
	case "diff":
		runDiff(os.Args[2:])
	case "type":
		runType(os.Args[2:])
	case "lock":
		runLock(os.Args[2:])
	case "backup":
		runBackup(os.Args[2:])
	case "keyring":
		runKeyring(os.Args[2:])
	case "settings":
		runSettings(os.Args[2:])
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runCreate(args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pocketvault create <name>")
		os.Exit(1)
	}
	cmd.Create(fs.Arg(0))
}

func runOpen(args []string) {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	cmd.Open(fs.Arg(0))
}

func runLs(args []string) {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	cmd.List(fs.Arg(0))
}

func runAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	vaultPath := fs.String("vault", "", "Vault path (browse when omitted)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	cmd.Add(*vaultPath)
}

func runRm(args []string) {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	vaultPath := fs.String("vault", "", "Vault path (browse when omitted)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pocketvault rm [--vault <path>] <title>")
		os.Exit(1)
	}
	cmd.Remove(*vaultPath, fs.Arg(0))
}

func runSave(args []string) {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	cmd.Save(fs.Arg(0))
}

func runDiff(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	cmd.Diff(fs.Arg(0))
}

func runType(args []string) {
	fs := flag.NewFlagSet("type", flag.ExitOnError)
	vaultPath := fs.String("vault", "", "Vault path (browse when omitted)")
	field := fs.String("field", "password", "Field to type: password, username, url, notes")
	chunked := fs.Bool("chunked", false, "Deliver in paced chunks")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pocketvault type [--vault <path>] [--field <field>] [--chunked] <title>")
		os.Exit(1)
	}
	cmd.Type(*vaultPath, fs.Arg(0), *field, *chunked)
}

func runLock(args []string) {
	fs := flag.NewFlagSet("lock", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	cmd.Lock()
}

func runBackup(args []string) {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)
	vaultPath := fs.String("vault", "", "Vault path on the medium")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: pocketvault backup <save|restore|list|delete> [name] [--vault <path>]")
		os.Exit(1)
	}
	op := fs.Arg(0)
	name := fs.Arg(1)
	if op != "list" && name == "" {
		fmt.Fprintln(os.Stderr, "Usage: pocketvault backup <save|restore|delete> <name> [--vault <path>]")
		os.Exit(1)
	}
	if (op == "save" || op == "restore") && *vaultPath == "" {
		fmt.Fprintln(os.Stderr, "The --vault flag is required for save and restore")
		os.Exit(1)
	}
	cmd.Backup(op, name, *vaultPath)
}

func runKeyring(args []string) {
	fs := flag.NewFlagSet("keyring", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: pocketvault keyring <save|delete|status> <vault-path>")
		os.Exit(1)
	}
	cmd.Keyring(fs.Arg(0), fs.Arg(1))
}

func runSettings(args []string) {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	switch fs.NArg() {
	case 0:
		cmd.Settings("", "")
	case 2:
		cmd.Settings(fs.Arg(0), fs.Arg(1))
	default:
		fmt.Fprintln(os.Stderr, "Usage: pocketvault settings [<key> <value>]")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("pocketvault - Offline password vault companion")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pocketvault <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  create      Create a new vault")
	fmt.Println("  open        Open a vault (browse the medium when no path given)")
	fmt.Println("  ls          List vault entries")
	fmt.Println("  add         Add a credential entry")
	fmt.Println("  rm          Remove a credential entry")
	fmt.Println("  save        Re-encrypt a vault with a fresh salt and nonce")
	fmt.Println("  diff        Show unsaved changes")
	fmt.Println("  type        Type a credential through the emulated keyboard")
	fmt.Println("  lock        Forget the remembered vault location")
	fmt.Println("  backup      Save, restore, list or delete container backups")
	fmt.Println("  keyring     Manage passphrases in the OS keyring")
	fmt.Println("  settings    Show or change persistent settings")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pocketvault create work              # New vault under the default directory")
	fmt.Println("  pocketvault open                     # Browse the medium for a vault")
	fmt.Println("  pocketvault type mail                # Type the password of entry 'mail'")
	fmt.Println("  pocketvault backup save work --vault /vaults/work.vault")
	fmt.Println()
	fmt.Println("Use 'pocketvault help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "create":
		fmt.Println("pocketvault create <name>")
		fmt.Println()
		fmt.Println("Creates an empty vault named <name>.vault under the default vault")
		fmt.Println("directory. Prompts for a passphrase twice; the passphrase is not")
		fmt.Println("stored anywhere unless you add it to the keyring later.")
	case "open":
		fmt.Println("pocketvault open [<path>]")
		fmt.Println()
		fmt.Println("Opens a vault and remembers its directory for later commands.")
		fmt.Println("Without a path, browses the medium starting at the last-used")
		fmt.Println("directory. Files that are not vaults are skipped with a notice.")
	case "ls":
		fmt.Println("pocketvault ls [<path>]")
		fmt.Println()
		fmt.Println("Lists entries grouped by category. Passwords are not shown.")
	case "add":
		fmt.Println("pocketvault add [--vault <path>]")
		fmt.Println()
		fmt.Println("Prompts for the fields of a new credential and saves the vault.")
	case "rm":
		fmt.Println("pocketvault rm [--vault <path>] <title>")
		fmt.Println()
		fmt.Println("Removes the entry with the given title and saves the vault.")
	case "save":
		fmt.Println("pocketvault save [<path>]")
		fmt.Println()
		fmt.Println("Re-encrypts the vault in place. Every save uses a fresh salt and")
		fmt.Println("nonce; the vault must still exist and be structurally intact.")
	case "diff":
		fmt.Println("pocketvault diff [<path>]")
		fmt.Println()
		fmt.Println("Shows a unified diff of unsaved changes. The output contains")
		fmt.Println("secrets, so it is only ever printed to the terminal.")
	case "type":
		fmt.Println("pocketvault type [--vault <path>] [--field <field>] [--chunked] <title>")
		fmt.Println()
		fmt.Println("Delivers one field of an entry as keystrokes. Wireless is tried")
		fmt.Println("first when enabled; an incomplete wireless delivery falls back to")
		fmt.Println("the wired keyboard. --chunked paces long values in fixed pieces.")
	case "lock":
		fmt.Println("pocketvault lock")
		fmt.Println()
		fmt.Println("Clears the remembered vault location. Keyring-stored passphrases")
		fmt.Println("are managed with 'pocketvault keyring'.")
	case "backup":
		fmt.Println("pocketvault backup <save|restore|list|delete> [name] [--vault <path>]")
		fmt.Println()
		fmt.Println("Manages named backup copies of sealed vault containers. Backups")
		fmt.Println("never require a passphrase; they are taken and restored encrypted.")
	case "keyring":
		fmt.Println("pocketvault keyring <save|delete|status> <vault-path>")
		fmt.Println()
		fmt.Println("Stores, removes or checks the passphrase for a vault in the OS")
		fmt.Println("keyring. Saving verifies the passphrase against the vault first.")
	case "settings":
		fmt.Println("pocketvault settings [<key> <value>]")
		fmt.Println()
		fmt.Println("Without arguments, shows all settings. With a key and value, sets")
		fmt.Println("one. Keys: layout, device-name, wireless, chunk-size.")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
