package filestore

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-dz/foodgram/internal/fileserver"
)

// Disk keeps objects on the local filesystem and serves them under
// host + urlPrefix.
type Disk struct {
	urlPrefix string
	host      string
	fs        *fileserver.FileServer
}

var _ FileStore = (*Disk)(nil)

func NewDisk(baseDirectory, urlPrefix, host string) *Disk {
	return &Disk{
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		host:      strings.TrimRight(host, "/"),
		fs:        fileserver.New(baseDirectory),
	}
}

func (d *Disk) FileServer() *fileserver.FileServer {
	return d.fs
}

func (d *Disk) URLPrefix() string {
	return d.urlPrefix
}

func (d *Disk) Save(_ context.Context, key, _ string, data []byte) error {
	if _, err := d.fs.Write(key, data); err != nil {
		return fmt.Errorf("saving %q: %w", key, err)
	}
	return nil
}

func (d *Disk) Delete(_ context.Context, key string) error {
	if err := d.fs.Delete(key); err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

func (d *Disk) URL(key string) string {
	return joinURL(d.host+d.urlPrefix, key)
}
