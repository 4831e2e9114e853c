package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isAdmin(ctx context.Context) bool
	getStatus() string
	Navigate(ctx context.Context, path string) error
	Upload(ctx context.Context, courseID, file, title string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// shortcuts maps commands taking one course ID to their path pattern.
var shortcuts = map[string]string{
	"course":    "/courses/%s",
	"drill":     "/courses/%s/drill",
	"ask":       "/courses/%s/ask",
	"theory":    "/courses/%s/theory",
	"questions": "/admin/courses/%s/questions",
}

// fixed maps argument-less commands to their path.
var fixed = map[string]string{
	"dashboard": "/dashboard",
	"courses":   "/courses",
	"admin":     "/admin/courses",
	"login":     "/login",
	"register":  "/register",
}

// runREPL starts a simple read–eval–print loop for the Jabuspark client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from a.getStatus):
//
//	Not logged in:
//	  - help              show available commands
//	  - login | register  authenticate or create an account
//	  - go <path>         open any page, e.g. "go /courses/7"
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - dashboard | courses
//	  - course <id> | drill <id> [server] | ask <id> | theory <id>
//	  - upload <id> <file> [title]
//	  - admin | questions <id>   (admins)
//	  - whoami | logout
//
// Errors returned by handlers are not fatal; handlers print their own
// messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "jabuspark %s> ", a.getStatus())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if path, ok := fixed[cmd]; ok {
			_ = a.Navigate(ctx, path)
			continue
		}
		if pattern, ok := shortcuts[cmd]; ok {
			if len(args) == 0 {
				fmt.Fprintf(w, "Usage: %s <course id>\n", cmd)
				continue
			}
			path := fmt.Sprintf(pattern, args[0])
			if cmd == "drill" && len(args) > 1 && args[1] == "server" {
				path += "?mode=server"
			}
			_ = a.Navigate(ctx, path)
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText(a.isLoggedIn(ctx), a.isAdmin(ctx)))

		case "go":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: go <path>")
				continue
			}
			_ = a.Navigate(ctx, args[0])

		case "upload":
			if len(args) < 2 {
				fmt.Fprintln(w, "Usage: upload <course id> <file> [title]")
				continue
			}
			_ = a.Upload(ctx, args[0], args[1], strings.Join(args[2:], " "))

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func helpText(loggedIn, admin bool) string {
	if !loggedIn {
		return "Available commands: login, register, go <path>, exit"
	}
	s := "Available commands: dashboard, courses, course <id>, drill <id> [server], ask <id>, theory <id>, upload <id> <file> [title], whoami, logout, go <path>, exit"
	if admin {
		s += "\nAdmin commands: admin, questions <id>"
	}
	return s
}
