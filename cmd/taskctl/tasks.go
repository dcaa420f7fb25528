package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck-api/internal/api"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

var (
	listPage   int
	listLimit  int
	listStatus string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		resp, err := c.ListTasks(cmd.Context(), store.ListParams{
			Page:   listPage,
			Limit:  listLimit,
			Status: domain.TaskStatus(listStatus),
			Search: listSearch,
		})
		if err != nil {
			return err
		}

		printTasks(resp.Data)
		fmt.Printf("Page %d of %d (%d tasks)\n",
			resp.Pagination.Page, resp.Pagination.Pages, resp.Pagination.Total)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		task, err := c.GetTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printTask(task)
		return nil
	},
}

var createDescription string

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		var description *string
		if cmd.Flags().Changed("description") {
			description = &createDescription
		}

		task, err := c.CreateTask(cmd.Context(), args[0], description)
		if err != nil {
			return err
		}

		printTask(task)
		return nil
	},
}

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task's title, description, or status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		// Only flags the user actually set are sent; the server leaves
		// omitted fields unchanged.
		var req api.UpdateTaskRequest
		if cmd.Flags().Changed("title") {
			req.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			req.Description = &updateDescription
		}
		if cmd.Flags().Changed("status") {
			req.Status = &updateStatus
		}

		task, err := c.UpdateTask(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printTask(task)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		if err := c.DeleteTask(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Task deleted")
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Advance a task to its next status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		task, err := c.ToggleTask(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printTask(task)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	listCmd.Flags().IntVar(&listLimit, "limit", 10, "tasks per page")
	listCmd.Flags().StringVar(&listStatus, "status", "",
		"filter by status (PENDING, IN_PROGRESS, COMPLETED)")
	listCmd.Flags().StringVar(&listSearch, "search", "",
		"filter by case-insensitive substring of title or description")

	createCmd.Flags().StringVar(&createDescription, "description", "", "task description")

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&updateStatus, "status", "",
		"new status (PENDING, IN_PROGRESS, COMPLETED)")
}

func printTasks(tasks []*domain.Task) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tCREATED")
	for _, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			task.ID, task.Status, task.Title,
			task.CreatedAt.Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

func printTask(task *domain.Task) {
	fmt.Printf("ID:          %s\n", task.ID)
	fmt.Printf("Title:       %s\n", task.Title)
	if task.Description != nil {
		fmt.Printf("Description: %s\n", *task.Description)
	}
	fmt.Printf("Status:      %s\n", task.Status)
	fmt.Printf("Created:     %s\n", task.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:     %s\n", task.UpdatedAt.Format("2006-01-02 15:04:05"))
}
