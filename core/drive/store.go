package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ErrNotFound is returned when a folder or file does not exist or is not visible.
var ErrNotFound = errors.New("drive: not found")

const folderMimeType = "application/vnd.google-apps.folder"

var (
	folderURLPattern = regexp.MustCompile(`/folders/([\w-]+)`)
	fileURLPattern   = regexp.MustCompile(`/file/d/([\w-]+)`)
	openURLPattern   = regexp.MustCompile(`[?&]id=([\w-]+)`)
)

// ExtractFolderID accepts a folder URL containing /folders/{id} or a bare id.
func ExtractFolderID(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if !strings.HasPrefix(identifier, "http") {
		if identifier == "" {
			return "", fmt.Errorf("empty folder identifier")
		}
		return identifier, nil
	}
	if m := folderURLPattern.FindStringSubmatch(identifier); m != nil {
		return m[1], nil
	}
	return "", fmt.Errorf("could not extract folder id from %q", identifier)
}

// ExtractFileID accepts a file URL (/file/d/{id} or ?id={id}) or a bare id.
func ExtractFileID(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if !strings.HasPrefix(identifier, "http") {
		if identifier == "" {
			return "", fmt.Errorf("empty file identifier")
		}
		return identifier, nil
	}
	for _, p := range []*regexp.Regexp{fileURLPattern, openURLPattern} {
		if m := p.FindStringSubmatch(identifier); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("could not extract file id from %q", identifier)
}

// Store browses Drive folders and downloads file contents.
type Store struct {
	svc *drive.Service
}

// New creates a Store using an authorised HTTP client.
func New(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*Store, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Store{svc: svc}, nil
}

// ResolveFolderID turns a folder URL or id into a verified folder id.
func (s *Store) ResolveFolderID(ctx context.Context, identifier string) (string, error) {
	id, err := ExtractFolderID(identifier)
	if err != nil {
		return "", err
	}

	f, err := s.svc.Files.Get(id).
		Fields("id", "mimeType").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", wrap("folder "+id, err)
	}
	if f.MimeType != folderMimeType {
		return "", fmt.Errorf("%w: %s is not a folder", ErrNotFound, id)
	}
	return f.Id, nil
}

// FindFileByName returns the id of the file in the folder whose name matches exactly.
func (s *Store) FindFileByName(ctx context.Context, folderID, filename string) (string, error) {
	q := fmt.Sprintf("'%s' in parents and name = '%s' and trashed = false", escapeQuery(folderID), escapeQuery(filename))

	list, err := s.svc.Files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(10).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to list folder %s: %w", folderID, err)
	}

	for _, f := range list.Files {
		if f.Name == filename {
			return f.Id, nil
		}
	}
	return "", fmt.Errorf("%w: file %s in folder %s", ErrNotFound, filename, folderID)
}

// DownloadFile returns the content of a file.
func (s *Store) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := s.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return nil, wrap("file "+fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read file %s: %w", fileID, err)
	}
	return data, nil
}

// ReadFileByName resolves the folder, finds the file by name and downloads it.
func (s *Store) ReadFileByName(ctx context.Context, folderIdentifier, filename string) ([]byte, error) {
	folderID, err := s.ResolveFolderID(ctx, folderIdentifier)
	if err != nil {
		return nil, err
	}
	fileID, err := s.FindFileByName(ctx, folderID, filename)
	if err != nil {
		return nil, err
	}
	return s.DownloadFile(ctx, fileID)
}

func wrap(what string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return fmt.Errorf("unable to get %s: %w", what, err)
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
