package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/simbaid-sync/internal/handler/local"
	"github.com/MKhiriev/simbaid-sync/models"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connectivity, queue sizes and the last sync time",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.api()
			if err != nil {
				return err
			}
			status, err := api.Status(cmd.Context())
			if err != nil {
				return err
			}
			if ctx.json {
				return writeJSON(cmd, status)
			}

			connection := "offline"
			if status.IsOnline {
				connection = "online"
			}
			if status.IsSyncing {
				connection += " (syncing)"
			}
			lastSync := "never"
			if status.LastSyncTime != nil {
				lastSync = humanize.Time(*status.LastSyncTime)
			}

			rows := [][]string{
				{"Connection", connection},
				{"Pending", strconv.Itoa(status.PendingItems)},
				{"Failed", strconv.Itoa(status.FailedItems)},
				{"Last synced", lastSync},
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}

func newQueueCommand(ctx *commandContext) *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and manage queued mutations",
	}

	queueCmd.AddCommand(newQueueListCommand(ctx))
	queueCmd.AddCommand(newQueueRetryCommand(ctx))
	queueCmd.AddCommand(newQueueRemoveCommand(ctx))
	queueCmd.AddCommand(newQueueClearCommand(ctx))

	return queueCmd
}

func newQueueListCommand(ctx *commandContext) *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending and failed items",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.api()
			if err != nil {
				return err
			}
			listing, err := api.Queue(cmd.Context(), state)
			if err != nil {
				return err
			}
			if ctx.json {
				return writeJSON(cmd, listing)
			}

			rows := buildQueueRows(listing, time.Now())
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Kind", "State", "Attempts", "Queued", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&state, "state", "s", "", "Filter by state: pending or failed")
	return cmd
}

func buildQueueRows(listing local.QueueListing, now time.Time) [][]string {
	rows := make([][]string, 0, len(listing.Pending)+len(listing.Failed))
	add := func(items []models.QueueItem, state string) {
		for _, item := range items {
			rows = append(rows, []string{
				item.ID,
				item.Kind.String(),
				state,
				strconv.Itoa(item.RetryCount),
				humanize.RelTime(item.EnqueuedAt, now, "ago", "from now"),
				humanize.Bytes(uint64(len(item.Payload))),
			})
		}
	}
	add(listing.Pending, local.QueueStatePending)
	add(listing.Failed, local.QueueStateFailed)
	return rows
}

func newQueueRetryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "retry [ID]",
		Short: "Retry one failed item, or every failed item when no ID is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.api()
			if err != nil {
				return err
			}

			var result models.SyncPassResult
			if len(args) == 1 {
				result, err = api.RetryFailedItem(cmd.Context(), args[0])
			} else {
				result, err = api.RetryFailed(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printPassResult(cmd, ctx, result)
		},
	}
}

func newQueueRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Drop one failed item without delivering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.api()
			if err != nil {
				return err
			}
			if err = api.RemoveFailedItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newQueueClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop every failed item without delivering it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to drop failed items without --yes")
			}
			api, err := ctx.api()
			if err != nil {
				return err
			}
			removed, err := api.ClearFailed(cmd.Context())
			if err != nil {
				return err
			}
			if ctx.json {
				return writeJSON(cmd, local.ClearResult{Removed: removed})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d failed item(s)\n", len(removed))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm removal")
	return cmd
}

func newSyncCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run a sync pass now and wait for it",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := ctx.api()
			if err != nil {
				return err
			}
			result, err := api.Sync(cmd.Context())
			if err != nil {
				return err
			}
			return printPassResult(cmd, ctx, result)
		},
	}
}

func newEnqueueCommand(ctx *commandContext) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "enqueue KIND [JSON]",
		Short: "Queue a mutation of KIND with a JSON payload from the argument, --file or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args, file)
			if err != nil {
				return err
			}
			if !json.Valid(payload) {
				return errors.New("payload is not valid JSON")
			}

			api, err := ctx.api()
			if err != nil {
				return err
			}
			item, err := api.Enqueue(cmd.Context(), models.Kind(args[0]), payload)
			if err != nil {
				return err
			}
			if ctx.json {
				return writeJSON(cmd, item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued %s\n", item.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the payload from a file, - for stdin")
	return cmd
}

func readPayload(cmd *cobra.Command, args []string, file string) ([]byte, error) {
	switch {
	case len(args) == 2:
		return []byte(args[1]), nil
	case file == "-" || file == "":
		return io.ReadAll(cmd.InOrStdin())
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
		return data, nil
	}
}

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show walletctl and sync client versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			self := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
			rows := [][]string{{"walletctl", self.Version, self.Date, self.Commit}}

			api, err := ctx.api()
			if err != nil {
				return err
			}
			if remote, err := api.Version(cmd.Context()); err == nil {
				rows = append(rows, []string{"client", remote.Version, remote.Date, remote.Commit})
			} else {
				rows = append(rows, []string{"client", "unreachable", "", ""})
			}

			fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Component", "Version", "Date", "Commit"}, rows, nil))
			return nil
		},
	}
}

func printPassResult(cmd *cobra.Command, ctx *commandContext, result models.SyncPassResult) error {
	if ctx.json {
		return writeJSON(cmd, result)
	}
	if result.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "Sync skipped: %s\n", result.SkipReason)
		return nil
	}

	rows := [][]string{{
		strconv.Itoa(result.Attempted),
		strconv.Itoa(result.Delivered),
		strconv.Itoa(result.Retried),
		strconv.Itoa(result.Exhausted),
		result.Duration().Round(time.Millisecond).String(),
	}}
	fmt.Fprint(cmd.OutOrStdout(), renderTable(
		[]string{"Attempted", "Delivered", "Retried", "Exhausted", "Took"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight},
	))
	return nil
}
