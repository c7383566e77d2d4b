package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notekeep/notes-api/pkg/client"
)

var (
	addColor string
	addTags  []string

	updateTitle   string
	updateContent string
	updateColor   string
	updateTags    []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes, pinned first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient()
		if err != nil {
			return err
		}

		notes, err := c.ListNotes(cmd.Context())
		if err != nil {
			return err
		}
		printNotes(notes)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title> <content>",
	Short: "Create a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient()
		if err != nil {
			return err
		}

		note, err := c.CreateNote(cmd.Context(), args[0], args[1], addColor, addTags)
		if err != nil {
			return err
		}
		fmt.Printf("created %s\n", note.ID)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient()
		if err != nil {
			return err
		}

		note, err := c.GetNote(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s%s\n", note.Title, pinMarker(note))
		if len(note.Tags) > 0 {
			fmt.Printf("tags: %s\n", strings.Join(note.Tags, ", "))
		}
		fmt.Printf("updated: %s\n\n", note.UpdatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Println(note.Content)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a note's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient()
		if err != nil {
			return err
		}

		var update client.NoteUpdate
		if cmd.Flags().Changed("title") {
			update.Title = &updateTitle
		}
		if cmd.Flags().Changed("content") {
			update.Content = &updateContent
		}
		if cmd.Flags().Changed("color") {
			update.Color = &updateColor
		}
		if cmd.Flags().Changed("tags") {
			update.Tags = updateTags
		}
		if update.Title == nil && update.Content == nil && update.Color == nil && update.Tags == nil {
			return fmt.Errorf("nothing to update, pass at least one of --title, --content, --color, --tags")
		}

		note, err := c.UpdateNote(cmd.Context(), args[0], update)
		if err != nil {
			return err
		}
		fmt.Printf("updated %s\n", note.ID)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient()
		if err != nil {
			return err
		}

		if err := c.DeleteNote(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle a note's pinned flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient()
		if err != nil {
			return err
		}

		note, err := c.TogglePin(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if note.IsPinned {
			fmt.Println("pinned")
		} else {
			fmt.Println("unpinned")
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search your notes by title, content, or tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := authedClient()
		if err != nil {
			return err
		}

		notes, err := c.SearchNotes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printNotes(notes)
		return nil
	},
}

func printNotes(notes []client.Note) {
	if len(notes) == 0 {
		fmt.Println("no notes")
		return
	}
	for _, n := range notes {
		fmt.Printf("%s  %-30s%s\n", n.ID, truncate(n.Title, 30), pinMarker(&n))
	}
}

func pinMarker(n *client.Note) string {
	if n.IsPinned {
		return "  [pinned]"
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	addCmd.Flags().StringVar(&addColor, "color", "", "hex color, e.g. #ff8800")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "comma-separated tags")

	editCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&updateContent, "content", "", "new content")
	editCmd.Flags().StringVar(&updateColor, "color", "", "new hex color")
	editCmd.Flags().StringSliceVar(&updateTags, "tags", nil, "replacement tag list")

	rootCmd.AddCommand(listCmd, addCmd, getCmd, editCmd, rmCmd, pinCmd, searchCmd)
}
