package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/contactbook/contactbook/pkg/contact"
)

// Actions accepted by -a/--action.
const (
	actionList   = "list"
	actionGet    = "get"
	actionAdd    = "add"
	actionRemove = "remove"
)

// actionRequest holds the action flags of one invocation.
type actionRequest struct {
	Action string
	ID     string
	Name   string
	Email  string
	Phone  string
}

var req actionRequest

func init() {
	rootCmd.Flags().StringVarP(&req.Action, "action", "a", "", "Action to perform: list, get, add or remove")
	rootCmd.Flags().StringVarP(&req.ID, "id", "i", "", "Contact id (get, remove)")
	rootCmd.Flags().StringVarP(&req.Name, "name", "n", "", "Contact name (add)")
	rootCmd.Flags().StringVarP(&req.Email, "email", "e", "", "Contact email (add)")
	rootCmd.Flags().StringVarP(&req.Phone, "phone", "p", "", "Contact phone, (XXX) XXX-XXXX or XXX-XX-XX (add)")
}

func runAction(cmd *cobra.Command, _ []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if req.Action == "" {
		fmt.Fprintln(stderr, "Error: action is required. Use -a or --action to specify the action.")
		// usage goes to stderr; stdout carries only the result
		cmd.SetOut(stderr)
		_ = cmd.Help()
		cmd.SetOut(stdout)
	}

	repo := contact.NewRepository(contactStore(), logger)
	if err := invokeAction(cmd.Context(), repo, req, cfg.Output, stdout, stderr, logger); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return nil
}

// invokeAction runs one repository operation and prints its result, nil included.
// An unknown action prints a warning and leaves the store alone. Panics are
// returned as errors.
func invokeAction(
	ctx context.Context,
	repo *contact.Repository,
	r actionRequest,
	format string,
	stdout, stderr io.Writer,
	logger *slog.Logger,
) (err error) {
	defer func() {
		if v := recover(); v != nil {
			logger.Error("panic occurred", "action", r.Action, "recovered", fmt.Sprint(v))
			err = fmt.Errorf("action %s failed: %v", r.Action, v)
		}
	}()

	logger.Debug("dispatching action", "action", r.Action)

	var result any
	switch r.Action {
	case actionList:
		result = repo.List(ctx)
	case actionGet:
		result = repo.Get(ctx, r.ID)
	case actionAdd:
		result = repo.Add(ctx, contact.NewContact{Name: r.Name, Email: r.Email, Phone: r.Phone})
	case actionRemove:
		result = repo.Remove(ctx, r.ID)
	default:
		fmt.Fprintf(stderr, "Warning: unknown action type %q\n", r.Action)
		return nil
	}

	return printResult(stdout, format, result)
}
