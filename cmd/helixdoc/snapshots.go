package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/helixdoc"
)

// Run executes the snapshots command.
func (c *SnapshotsCmd) Run(deps *Dependencies) error {
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, helixdoc.SnapshotFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helixdoc.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'helixdoc extract --db <path>' to record one.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %3d endpoints  %s  %s\n",
			s.ID, s.CreatedAt.Local().Format(time.DateTime), s.EndpointCount, s.ContentHash, s.SourceURL)
	}

	return nil
}

// Run executes the endpoints command.
func (c *EndpointsCmd) Run(deps *Dependencies) error {
	endpoints, err := deps.Snapshots.FindEndpoints(deps.Ctx, c.SnapshotID)
	if err != nil {
		if helixdoc.ErrorCode(err) == helixdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: snapshot %q not found\n", c.SnapshotID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", helixdoc.ErrorMessage(err))
		}
		return err
	}

	if len(endpoints) == 0 {
		fmt.Fprintln(deps.Stdout, "Snapshot has no endpoints.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, helixdoc.FormatEndpoints(endpoints))
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return helixdoc.Errorf(helixdoc.EINVALID, "use --force to confirm deletion")
	}

	snap, err := deps.Snapshots.FindSnapshotByID(deps.Ctx, c.SnapshotID)
	if err != nil {
		if helixdoc.ErrorCode(err) == helixdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'helixdoc snapshots' to see stored snapshots.\n", c.SnapshotID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", helixdoc.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, snap.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helixdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted snapshot %s (%d endpoints)\n", snap.ID, snap.EndpointCount)
	return nil
}
