package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Courses(ctx context.Context) error
	Enroll(ctx context.Context, courseID, title string) error
	Unenroll(ctx context.Context, courseID string) error
	Tutors(ctx context.Context) error
	Ratings(ctx context.Context) error
}

// runREPL reads commands from scanner until EOF, "exit" or "quit". Command
// errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("coursehub %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, courses, enroll <courseId> <title>, unenroll <courseId>, tutors, ratings, logout, exit")
			} else {
				printlnFn("Available commands: register, login, tutors, ratings, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "me":
			err = a.Me(ctx)

		case "courses":
			err = a.Courses(ctx)

		case "enroll":
			if len(args) < 2 {
				printlnFn("Usage: enroll <courseId> <title>")
				continue
			}
			err = a.Enroll(ctx, args[0], strings.Join(args[1:], " "))

		case "unenroll":
			if len(args) != 1 {
				printlnFn("Usage: unenroll <courseId>")
				continue
			}
			err = a.Unenroll(ctx, args[0])

		case "tutors":
			err = a.Tutors(ctx)

		case "ratings":
			err = a.Ratings(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
