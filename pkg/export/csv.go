// Package export writes the relay census out as CSV address lists.
//
// Three files are produced per run: all relays, guard relays, and exit
// relays, one row per OR address. Each file is written to a temporary name
// and renamed into place, so readers never observe a partial file.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/ling0x/tor-nodes/pkg/errors"
	"github.com/ling0x/tor-nodes/pkg/onionoo"
)

// Header is the first row of every exported file.
const Header = "fingerprint,ipaddr,port"

// Output file names, relative to the export directory.
const (
	FileAll    = "all.csv"
	FileGuards = "guards.csv"
	FileExits  = "exits.csv"
)

// csvFile buffers rows for one output file and publishes it atomically on
// finalise.
type csvFile struct {
	path string
	tmp  string
	f    *os.File
	w    *bufio.Writer
}

func createCSV(path string) (*csvFile, error) {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "create %s", tmp)
	}
	c := &csvFile{path: path, tmp: tmp, f: f, w: bufio.NewWriter(f)}
	if err := c.writeRow(Header); err != nil {
		c.discard()
		return nil, err
	}
	return c, nil
}

func (c *csvFile) writeRow(row string) error {
	if _, err := fmt.Fprintln(c.w, row); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", c.path)
	}
	return nil
}

// finalise flushes the buffer and renames the temporary into place.
func (c *csvFile) finalise() error {
	if err := c.w.Flush(); err != nil {
		c.discard()
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "flush %s", c.path)
	}
	if err := c.f.Close(); err != nil {
		os.Remove(c.tmp)
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "close %s", c.path)
	}
	if err := os.Rename(c.tmp, c.path); err != nil {
		os.Remove(c.tmp)
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "publish %s", c.path)
	}
	return nil
}

func (c *csvFile) discard() {
	c.f.Close()
	os.Remove(c.tmp)
}

// Write emits all.csv, guards.csv and exits.csv into dir. A relay row goes
// to guards.csv and exits.csv independently by flag, so a Guard+Exit relay
// appears in both. OR addresses that do not parse are skipped silently.
func Write(dir string, relays []onionoo.Relay) (err error) {
	var files []*csvFile
	defer func() {
		if err != nil {
			for _, c := range files {
				c.discard()
			}
		}
	}()

	var all, guards, exits *csvFile
	for _, out := range []struct {
		name string
		dst  **csvFile
	}{
		{FileAll, &all},
		{FileGuards, &guards},
		{FileExits, &exits},
	} {
		c, err := createCSV(filepath.Join(dir, out.name))
		if err != nil {
			return err
		}
		files = append(files, c)
		*out.dst = c
	}

	for _, relay := range relays {
		isGuard := relay.IsGuard()
		isExit := relay.IsExit()

		for _, addr := range relay.ORAddresses {
			ap, ok := onionoo.ParseORAddress(addr)
			if !ok {
				continue
			}
			row := fmt.Sprintf("%s,%s,%d", relay.Fingerprint, ap.Addr(), ap.Port())
			if err := all.writeRow(row); err != nil {
				return err
			}
			if isGuard {
				if err := guards.writeRow(row); err != nil {
					return err
				}
			}
			if isExit {
				if err := exits.writeRow(row); err != nil {
					return err
				}
			}
		}
	}

	for _, c := range files {
		if err := c.finalise(); err != nil {
			return err
		}
	}
	return nil
}
