// Package main is jobctl, a terminal client for the ApplyTrack API.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/applytrack/applytrack/internal/client"
)

const defaultBaseURL = "http://localhost:8080/api/v1"

func main() {
	baseURL := flag.String("api", envOr("APPLYTRACK_API", defaultBaseURL), "API base URL")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	sessionPath, err := client.DefaultSessionPath()
	if err != nil {
		fatal(err)
	}

	c := client.New(*baseURL, client.NewStore(), client.NewSessionFile(sessionPath))
	if err := c.Restore(); err != nil {
		fatal(err)
	}

	ctx := context.Background()

	switch args[0] {
	case "register":
		err = runRegister(ctx, c)
	case "login":
		err = runLogin(ctx, c)
	case "logout":
		err = c.Logout()
	case "whoami":
		err = runWhoami(c)
	case "list":
		err = runList(ctx, c)
	case "show":
		err = runShow(ctx, c, args[1:])
	case "add":
		err = runAdd(ctx, c, args[1:])
	case "edit":
		err = runEdit(ctx, c, args[1:])
	case "delete":
		err = runDelete(ctx, c, args[1:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: jobctl [-api URL] <command>

commands:
  register                      create an account and log in
  login                         log in to an existing account
  logout                        discard the stored session
  whoami                        print the logged-in user
  list                          list your job applications
  show <id>                     show one job application
  add -company C -position P [-status S]
  edit <id> -company C -position P [-status S]
  delete <id>`)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "jobctl:", err)
	os.Exit(1)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label, ": ")
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label, ": ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func runRegister(ctx context.Context, c *client.Client) error {
	reader := bufio.NewReader(os.Stdin)

	name, err := prompt(reader, "Name")
	if err != nil {
		return err
	}
	email, err := prompt(reader, "Email")
	if err != nil {
		return err
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	if err := c.Register(ctx, name, email, password); err != nil {
		return err
	}

	fmt.Printf("registered and logged in as %s\n", c.State().User)
	return nil
}

func runLogin(ctx context.Context, c *client.Client) error {
	reader := bufio.NewReader(os.Stdin)

	email, err := prompt(reader, "Email")
	if err != nil {
		return err
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	if err := c.Login(ctx, email, password); err != nil {
		return err
	}

	fmt.Printf("logged in as %s\n", c.State().User)
	return nil
}

func runWhoami(c *client.Client) error {
	state := c.State()
	if state.User == "" {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Println(state.User)
	return nil
}

func runList(ctx context.Context, c *client.Client) error {
	if err := c.FetchJobs(ctx); err != nil {
		return err
	}

	state := c.State()
	if len(state.Jobs) == 0 {
		fmt.Println("no job applications yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tSTATUS\tCREATED")
	for _, job := range state.Jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			job.ID, job.Company, job.Position, job.Status,
			job.CreatedAt.Local().Format("2006-01-02"),
		)
	}
	return w.Flush()
}

func runShow(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: jobctl show <id>")
	}

	if err := c.FetchSingleJob(ctx, args[0]); err != nil {
		return err
	}

	job := c.State().EditItem.Job
	if job == nil {
		return fmt.Errorf("no job with id %s", args[0])
	}

	fmt.Printf("id:       %s\n", job.ID)
	fmt.Printf("company:  %s\n", job.Company)
	fmt.Printf("position: %s\n", job.Position)
	fmt.Printf("status:   %s\n", job.Status)
	fmt.Printf("created:  %s\n", job.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("updated:  %s\n", job.UpdatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func jobFlags(name string, args []string) (client.JobInput, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	company := fs.String("company", "", "company name")
	position := fs.String("position", "", "job position")
	status := fs.String("status", "", "application status (applied, interviewing, offer received, rejected)")

	if err := fs.Parse(args); err != nil {
		return client.JobInput{}, nil, err
	}

	return client.JobInput{
		Company:  *company,
		Position: *position,
		Status:   *status,
	}, fs.Args(), nil
}

func runAdd(ctx context.Context, c *client.Client, args []string) error {
	input, _, err := jobFlags("add", args)
	if err != nil {
		return err
	}

	if err := c.CreateJob(ctx, input); err != nil {
		return err
	}

	state := c.State()
	job := state.Jobs[len(state.Jobs)-1]
	fmt.Printf("created %s (%s at %s)\n", job.ID, job.Position, job.Company)
	return nil
}

func runEdit(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: jobctl edit <id> -company C -position P [-status S]")
	}
	jobID := args[0]

	input, _, err := jobFlags("edit", args[1:])
	if err != nil {
		return err
	}

	if err := c.EditJob(ctx, jobID, input); err != nil {
		return err
	}

	job := c.State().EditItem.Job
	fmt.Printf("updated %s: %s at %s (%s)\n", job.ID, job.Position, job.Company, job.Status)
	return nil
}

func runDelete(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: jobctl delete <id>")
	}

	if err := c.DeleteJob(ctx, args[0]); err != nil {
		return err
	}

	fmt.Printf("deleted %s; %d job(s) remaining\n", args[0], len(c.State().Jobs))
	return nil
}
