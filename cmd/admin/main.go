// Command admin manages user accounts offline. User deletion is deliberately
// not exposed over HTTP; removing a user here cascades to their transactions
// and goals.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"budget-tracker/internal/auth"
	"budget-tracker/internal/domain"
	"budget-tracker/internal/repository/sqlite"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dbPath := fs.String("db", "data/budget.db", "Path to database file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, "Usage: admin [-db <path>] <adduser|deluser|listusers> [args]")
		fs.PrintDefaults()
		return fmt.Errorf("missing command")
	}

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	users := sqlite.NewUserRepository(db)
	if err := users.Init(ctx); err != nil {
		return fmt.Errorf("init user repository: %w", err)
	}

	switch cmd := fs.Arg(0); cmd {
	case "adduser":
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: admin adduser <username>")
		}
		username := fs.Arg(1)

		fmt.Fprint(stdout, "Password: ")
		password, err := readPassword(stdin)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Fprintln(stdout)
		if strings.TrimSpace(password) == "" {
			return fmt.Errorf("password cannot be empty")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		user := &domain.User{Username: username, PasswordHash: hash}
		id, err := users.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		fmt.Fprintf(stdout, "User %s created with ID %d\n", username, id)
		return nil

	case "deluser":
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: admin deluser <user-id>")
		}
		id, err := strconv.ParseInt(fs.Arg(1), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", fs.Arg(1))
		}
		if err := users.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		fmt.Fprintf(stdout, "User %d deleted (transactions and goals removed)\n", id)
		return nil

	case "listusers":
		all, err := users.List(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		for _, u := range all {
			fmt.Fprintf(stdout, "%d\t%s\t%s\n", u.ID, u.Username, u.CreatedAt.Format("2006-01-02"))
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
