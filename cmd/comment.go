package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/rightnow/models"
)

// commentCmd groups comment commands
var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "List and manage comments",
}

var commentListCmd = &cobra.Command{
	Use:   "list POST_HASH",
	Short: "List the comments of a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentList,
}

var commentAddCmd = &cobra.Command{
	Use:   "add POST_HASH BODY",
	Short: "Add a comment to a post",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentAdd,
}

var commentUpdateCmd = &cobra.Command{
	Use:   "update COMMENT_ID BODY",
	Short: "Replace the body of a comment",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentUpdate,
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete COMMENT_ID",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentDelete,
}

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.AddCommand(commentListCmd, commentAddCmd, commentUpdateCmd, commentDeleteCmd)
}

func runCommentList(cmd *cobra.Command, args []string) error {
	comments, err := client.CommentList(cmd.Context(), args[0], callOptions()...)
	if err != nil {
		return err
	}

	out, err := attributeList(comments)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func runCommentAdd(cmd *cobra.Command, args []string) error {
	comment, err := client.CommentAdd(cmd.Context(), args[0], args[1], callOptions()...)
	if err != nil {
		return err
	}
	logger.Info().Int64("id", comment.ID).Str("post", args[0]).Msg("Comment added")
	return printComment(cmd, comment)
}

func runCommentUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseCommentID(args[0])
	if err != nil {
		return err
	}

	comment, err := client.CommentUpdate(cmd.Context(), id, args[1], callOptions()...)
	if err != nil {
		return err
	}
	logger.Info().Int64("id", id).Msg("Comment updated")
	return printComment(cmd, comment)
}

func runCommentDelete(cmd *cobra.Command, args []string) error {
	id, err := parseCommentID(args[0])
	if err != nil {
		return err
	}

	result, err := client.CommentDelete(cmd.Context(), id, callOptions()...)
	if err != nil {
		return err
	}
	logger.Info().Int64("id", id).Msg("Comment deleted")
	return printJSON(cmd.OutOrStdout(), result)
}

func printComment(cmd *cobra.Command, comment *models.Comment) error {
	attrs, err := comment.Attributes()
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), attrs)
}

func parseCommentID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid comment id %q: %w", arg, err)
	}
	return id, nil
}
