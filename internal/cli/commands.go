package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/devsession/pkg/domain"
)

// RunGet prints the cached entry of a device.
func RunGet(ctx context.Context, svc *Service, rawID, format string, w io.Writer) error {
	id, err := domain.ParseDeviceID(rawID)
	if err != nil {
		return err
	}

	entry, err := svc.Cache.Get(ctx, id)
	if err != nil {
		return err
	}
	return writeEntry(w, entry, format)
}

// RunPut replaces the cached entry of a device with the JSON entry read from r
// and reports which sessions changed.
func RunPut(ctx context.Context, svc *Service, rawID string, r io.Reader, w io.Writer) error {
	id, err := domain.ParseDeviceID(rawID)
	if err != nil {
		return err
	}

	var entry domain.Entry
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&entry); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	if entry.Sessions == nil {
		entry = domain.EmptyEntry()
	}

	// The previous entry only feeds the change report. An unreadable one must not
	// block the overwrite that replaces it.
	previous, prevErr := svc.Cache.Get(ctx, id)

	written, err := svc.Cache.Put(ctx, id, entry)
	if err != nil {
		return err
	}
	printSystemMessage(w, "Cached %d session(s) for device '%s'.", written.Len(), id)
	if prevErr != nil {
		fmt.Fprintf(w, "    previous entry was unreadable and has been replaced: %v\n", prevErr)
		return nil
	}
	if diff := domain.Diff(previous, written); !diff.IsEmpty() {
		fmt.Fprintf(w, "    +%d added, -%d removed\n", len(diff.Added), len(diff.Removed))
	}
	return nil
}

// RunList prints the devices that have a cached entry.
func RunList(ctx context.Context, svc *Service, w io.Writer) error {
	devices, err := svc.Cache.Devices(ctx)
	if err != nil {
		return err
	}

	if len(devices) == 0 {
		fmt.Fprintln(w, "No cached devices found.")
		return nil
	}

	fmt.Fprintln(w, "Cached Devices:")
	for _, d := range devices {
		fmt.Fprintln(w, "- "+d.String())
	}
	return nil
}

// RunRemove deletes the cached entries of the given devices directly in the store.
// Every id is attempted; the returned error joins the individual failures.
func RunRemove(ctx context.Context, svc *Service, rawIDs []string, w io.Writer) error {
	var errs []error
	for _, raw := range rawIDs {
		id, err := domain.ParseDeviceID(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := svc.Store.Delete(ctx, svc.Cache.Key(id)); err != nil {
			errs = append(errs, fmt.Errorf("removing '%s': %w", id, err))
			continue
		}
		fmt.Fprintf(w, "Removed device '%s'\n", id)
	}
	return errors.Join(errs...)
}
