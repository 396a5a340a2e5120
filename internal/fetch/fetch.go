// Package fetch downloads template archives over HTTP into the template
// store, with optional sha256 verification against a published
// checksums.txt.
package fetch

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skillforge-labs/skillforge/internal/workspace"
)

// Fetcher downloads template archives.
type Fetcher struct {
	httpClient *http.Client
}

// New returns a Fetcher with a sane default timeout.
func New() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Options for a single fetch.
type Options struct {
	URL          string // archive URL; the last path element names the template
	Name         string // override for the template name (optional)
	ChecksumsURL string // URL of a "sha256  filename" list (optional)
	Out          io.Writer
}

// Fetch downloads a template archive into the store directory for its name,
// verifies it when a checksums URL is given, and unpacks the store metadata
// (info.md, template.yaml) that ships inside the archive.
func (f *Fetcher) Fetch(opts Options) (string, error) {
	name := opts.Name
	if name == "" {
		name = templateNameFromURL(opts.URL)
	}
	if name == "" {
		return "", fmt.Errorf("cannot derive template name from %s; pass --name", opts.URL)
	}

	dir, err := workspace.TemplateDir(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, workspace.DirPermNormal); err != nil {
		return "", fmt.Errorf("creating template directory: %w", err)
	}

	archivePath := filepath.Join(dir, name+".zip")
	if err := f.download(opts.URL, archivePath, opts.Out); err != nil {
		return "", err
	}

	if opts.ChecksumsURL != "" {
		if err := f.verifyChecksum(opts.ChecksumsURL, archivePath); err != nil {
			os.Remove(archivePath)
			return "", err
		}
	}

	if err := unpackMetadata(archivePath, dir); err != nil {
		return "", err
	}

	return dir, nil
}

// download streams the URL to destPath, printing percentage progress.
func (f *Fetcher) download(url, destPath string, w io.Writer) error {
	if w == nil {
		w = io.Discard
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("creating download request: %w", err)
	}
	req.Header.Set("User-Agent", "skillforge")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating download file: %w", err)
	}
	defer out.Close()

	total := resp.ContentLength
	var downloaded int64
	lastPercent := -1

	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("writing download: %w", writeErr)
			}
			downloaded += int64(n)
			if total > 0 {
				percent := int(downloaded * 100 / total)
				if percent != lastPercent {
					fmt.Fprintf(w, "\rDownloading... %d%%", percent)
					lastPercent = percent
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("reading download stream: %w", readErr)
		}
	}
	if total > 0 {
		fmt.Fprintln(w)
	}

	return out.Close()
}

// verifyChecksum fetches the checksum list and compares the archive's sha256.
func (f *Fetcher) verifyChecksum(checksumsURL, archivePath string) error {
	req, err := http.NewRequest("GET", checksumsURL, nil)
	if err != nil {
		return fmt.Errorf("creating checksum request: %w", err)
	}
	req.Header.Set("User-Agent", "skillforge")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading checksums: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("checksums download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading checksums: %w", err)
	}

	want := ""
	archiveName := filepath.Base(archivePath)
	for _, line := range strings.Split(string(body), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == archiveName {
			want = fields[0]
			break
		}
	}
	if want == "" {
		return fmt.Errorf("no checksum entry for %s", archiveName)
	}

	got, err := fileSHA256(archivePath)
	if err != nil {
		return err
	}
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("checksum mismatch for %s: got %s, want %s", archiveName, got, want)
	}
	return nil
}

// unpackMetadata extracts info.md and template.yaml from the archive root
// into the store directory, alongside the archive itself.
func unpackMetadata(archivePath, dir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	wanted := map[string]bool{
		workspace.InfoFile:     true,
		workspace.ManifestFile: true,
	}

	for _, zf := range r.File {
		base := filepath.Base(zf.Name)
		if !wanted[base] {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return fmt.Errorf("opening archive entry %s: %w", zf.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("reading archive entry %s: %w", zf.Name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, base), data, workspace.FilePermNorm); err != nil {
			return err
		}
		delete(wanted, base)
	}

	if wanted[workspace.InfoFile] {
		return fmt.Errorf("archive has no %s; a template is not usable without its info document", workspace.InfoFile)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// templateNameFromURL derives a template name from the archive URL.
func templateNameFromURL(url string) string {
	base := filepath.Base(strings.TrimSuffix(url, "/"))
	return strings.TrimSuffix(base, ".zip")
}
