package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"gigawall/internal/app"
	"gigawall/internal/config"
	"gigawall/internal/model"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer
// app.Close(). operation identifies the CLI command being run (e.g.
// "Connect", "Deploy").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// promptToken reads an access token without echoing it.
func promptToken() (string, error) {
	fmt.Print("Access token: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// printDeployLog renders the session's deploy log, newest first.
func printDeployLog(a *app.App) {
	for _, e := range a.DeployLogEntries() {
		fmt.Printf("%-7s  %s\n", e.Level, e.Message)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gigawall",
	Short: "Gigawall portal data store and deploy engine",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:    %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:     %s\n", cfg.LogDir)
		fmt.Printf("Data Dir:    %s\n", cfg.DataDir)
		fmt.Printf("Project Dir: %s\n", cfg.ProjectDir)
		fmt.Printf("Profile:     %s (%s)\n", cfg.Profile.DisplayName, cfg.Profile.Handle)
		return nil
	},
}

// connect command
var connectCmd = &cobra.Command{
	Use:   "connect REPO_URL",
	Short: "Verify repository access and save credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		private, _ := cmd.Flags().GetBool("private")

		if token == "" {
			var err error
			token, err = promptToken()
			if err != nil {
				return err
			}
		}

		a, err := newApp("Connect")
		if err != nil {
			return err
		}
		defer a.Close()

		repo, err := a.Connect(cmd.Context(), args[0], token, private)
		printDeployLog(a)
		if err != nil {
			return fmt.Errorf("connecting: %w", err)
		}

		fmt.Printf("Connected to %s (default branch %s)\n", repo.FullName, repo.DefaultBranch)
		return nil
	},
}

// deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Mirror the full project to the repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Deploy")
		if err != nil {
			return err
		}
		defer a.Close()

		uploaded, total, err := a.Deploy(cmd.Context())
		printDeployLog(a)
		if err != nil {
			return fmt.Errorf("deploy failed: %w", err)
		}

		fmt.Printf("Uploaded %d/%d file(s)\n", uploaded, total)
		return nil
	},
}

var deployDataCmd = &cobra.Command{
	Use:   "data",
	Short: "Upload only the content catalog snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeployData")
		if err != nil {
			return err
		}
		defer a.Close()

		err = a.DeployData(cmd.Context())
		printDeployLog(a)
		if err != nil {
			return fmt.Errorf("data sync failed: %w", err)
		}
		return nil
	},
}

// build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Trigger the remote build workflow",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("TriggerBuild")
		if err != nil {
			return err
		}
		defer a.Close()

		err = a.TriggerBuild(cmd.Context())
		printDeployLog(a)
		if err != nil {
			return fmt.Errorf("build trigger failed: %w", err)
		}
		return nil
	},
}

// content command
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the content catalog",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the content catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListContent")
		if err != nil {
			return err
		}
		defer a.Close()

		items, err := a.ListContent()
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Println("No content published.")
			return nil
		}

		for _, c := range items {
			fmt.Printf("%-36s  %-5s  %-12s  %s\n", c.ID, c.Type, c.Category, c.Title)
		}
		return nil
	},
}

var contentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Publish a new content item",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		contentType, _ := cmd.Flags().GetString("type")
		url, _ := cmd.Flags().GetString("url")
		category, _ := cmd.Flags().GetString("category")
		tags, _ := cmd.Flags().GetStringSlice("tags")

		if title == "" {
			return fmt.Errorf("--title is required")
		}
		switch model.ContentType(contentType) {
		case model.ContentVideo, model.ContentImage, model.ContentFile:
		default:
			return fmt.Errorf("--type must be video, image or file")
		}

		a, err := newApp("AddContent")
		if err != nil {
			return err
		}
		defer a.Close()

		item, err := a.AddContent(title, description, model.ContentType(contentType), url, category, tags)
		if err != nil {
			return fmt.Errorf("publishing content: %w", err)
		}

		fmt.Printf("Published %q (%s)\n", item.Title, item.ID)
		return nil
	},
}

// notifications command
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications for the local profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Notifications")
		if err != nil {
			return err
		}
		defer a.Close()

		notifs, err := a.Notifications()
		if err != nil {
			return err
		}

		if len(notifs) == 0 {
			fmt.Println("No notifications.")
			return nil
		}

		for _, n := range notifs {
			read := " "
			if !n.Read {
				read = "*"
			}
			fmt.Printf("%s %-10s  %-24s  %s\n", read, n.Type, n.Title, n.Message)
		}
		return nil
	},
}

// like command
var likeCmd = &cobra.Command{
	Use:   "like CONTENT_ID",
	Short: "Toggle a like on a content item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ToggleLike")
		if err != nil {
			return err
		}
		defer a.Close()

		liked, err := a.ToggleLike(args[0])
		if err != nil {
			return fmt.Errorf("toggling like: %w", err)
		}

		if liked {
			fmt.Printf("Liked %s\n", args[0])
		} else {
			fmt.Printf("Unliked %s\n", args[0])
		}
		return nil
	},
}

// comment command
var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage comment threads",
}

var commentListCmd = &cobra.Command{
	Use:   "list CONTENT_ID",
	Short: "View the comment thread of a content item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Comments")
		if err != nil {
			return err
		}
		defer a.Close()

		thread, err := a.Comments(args[0])
		if err != nil {
			return err
		}

		if len(thread) == 0 {
			fmt.Println("No comments.")
			return nil
		}

		for _, c := range thread {
			fmt.Printf("[%s] %s (%s): %s\n", c.Status, c.UserName, c.UserHandle, c.Text)
		}
		return nil
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add CONTENT_ID TEXT",
	Short: "Post a comment on a content item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddComment")
		if err != nil {
			return err
		}
		defer a.Close()

		comment, err := a.AddComment(args[0], args[1])
		if err != nil {
			return fmt.Errorf("posting comment: %w", err)
		}

		fmt.Printf("Comment posted (%s, awaiting moderation)\n", comment.ID)
		return nil
	},
}

// chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Manage the chat transcript",
}

var chatLogCmd = &cobra.Command{
	Use:   "log",
	Short: "View the chat transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ChatHistory")
		if err != nil {
			return err
		}
		defer a.Close()

		history, err := a.ChatHistory()
		if err != nil {
			return err
		}

		if len(history) == 0 {
			fmt.Println("No chat history.")
			return nil
		}

		for _, m := range history {
			sender := m.SenderName
			if m.IsAI {
				sender += " [ai]"
			}
			fmt.Printf("%s  %s: %s\n", m.Timestamp, sender, m.Text)
		}
		return nil
	},
}

var chatSayCmd = &cobra.Command{
	Use:   "say TEXT",
	Short: "Send a chat message as the local profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SendChatMessage")
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.SendChatMessage(args[0]); err != nil {
			return fmt.Errorf("sending message: %w", err)
		}
		return nil
	},
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the chat transcript",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ClearChat")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.ClearChat(); err != nil {
			return fmt.Errorf("clearing chat: %w", err)
		}

		fmt.Println("Chat transcript cleared.")
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View deploy operation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("History")
		if err != nil {
			return err
		}
		defer a.Close()

		ops, err := a.History(limit)
		if err != nil {
			return err
		}

		if len(ops) == 0 {
			fmt.Println("No deploy operations recorded.")
			return nil
		}

		for _, op := range ops {
			duration := ""
			if op.FinishedAt != nil {
				d := op.FinishedAt.Sub(op.StartedAt)
				duration = d.Truncate(time.Millisecond).String()
			}
			fmt.Printf("#%d  %-16s  %s  %-8s  %3d file(s)  %s\n",
				op.ID,
				op.Operation,
				op.StartedAt.Format("2006-01-02 15:04:05"),
				op.Status,
				op.FilesUploaded,
				duration,
			)
		}
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// connect flags
	connectCmd.Flags().StringP("token", "t", "", "Access token (prompted when omitted)")
	connectCmd.Flags().Bool("private", false, "Mark the repository as private in local settings")

	// content subcommands
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentAddCmd)
	contentAddCmd.Flags().String("title", "", "Content title")
	contentAddCmd.Flags().String("description", "", "Content description")
	contentAddCmd.Flags().String("type", "file", "Content type: video, image or file")
	contentAddCmd.Flags().String("url", "", "Content URL")
	contentAddCmd.Flags().String("category", "Other", "Content category")
	contentAddCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")

	// comment subcommands
	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)

	// chat subcommands
	chatCmd.AddCommand(chatLogCmd)
	chatCmd.AddCommand(chatSayCmd)
	chatCmd.AddCommand(chatClearCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(deployCmd)
	deployCmd.AddCommand(deployDataCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
}
