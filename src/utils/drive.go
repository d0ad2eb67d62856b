package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	driveService *drive.Service
	driveOnce    sync.Once
)

// InitGoogleDriveService initializes the Google Drive client from a
// service-account credential, taken either from a file path or inline JSON.
func InitGoogleDriveService() error {
	var initErr error
	driveOnce.Do(func() {
		ctx := context.Background()

		var credsBytes []byte
		if path := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH"); path != "" {
			var readErr error
			credsBytes, readErr = os.ReadFile(path)
			if readErr != nil {
				initErr = fmt.Errorf("error reading credentials file: %w", readErr)
				return
			}
		} else if inline := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON"); inline != "" {
			credsBytes = []byte(inline)
		} else {
			initErr = fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH or GOOGLE_DRIVE_CREDENTIALS_JSON must be set")
			return
		}

		creds, err := google.CredentialsFromJSON(ctx, credsBytes, drive.DriveReadonlyScope)
		if err != nil {
			initErr = fmt.Errorf("error loading credentials: %w", err)
			return
		}

		driveService, err = drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			initErr = fmt.Errorf("error creating Google Drive service: %w", err)
			return
		}

		log.Printf("[GOOGLE_DRIVE] Service initialized")
	})
	return initErr
}

// GetGoogleDriveService returns the Drive client, initializing it if needed
func GetGoogleDriveService() (*drive.Service, error) {
	if driveService == nil {
		if err := InitGoogleDriveService(); err != nil {
			return nil, err
		}
	}
	return driveService, nil
}

// ExtractFileIDFromURL pulls the file id out of a Google Drive share URL
func ExtractFileIDFromURL(url string) (string, error) {
	// Common Google Drive URL shapes
	patterns := []string{
		`/file/d/([a-zA-Z0-9_-]+)`,                     // /file/d/FILE_ID
		`id=([a-zA-Z0-9_-]+)`,                          // ?id=FILE_ID
		`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`, // open?id=FILE_ID
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	return "", fmt.Errorf("could not extract a file id from URL: %s", url)
}

// DownloadFileFromGoogleDrive streams a Drive-hosted file (game box art)
func DownloadFileFromGoogleDrive(fileID string) (io.ReadCloser, string, error) {
	service, err := GetGoogleDriveService()
	if err != nil {
		return nil, "", fmt.Errorf("error getting Google Drive service: %w", err)
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Do()
	if err != nil {
		return nil, "", fmt.Errorf("error fetching file metadata: %w", err)
	}

	if file.MimeType == "application/vnd.google-apps.folder" {
		return nil, "", fmt.Errorf("Google Drive folders cannot be downloaded directly")
	}

	resp, err := service.Files.Get(fileID).Download()
	if err != nil {
		return nil, "", fmt.Errorf("error downloading file: %w", err)
	}

	return resp.Body, file.MimeType, nil
}

// IsGoogleDriveURL reports whether the URL points at Google Drive
func IsGoogleDriveURL(url string) bool {
	return regexp.MustCompile(`drive\.google\.com`).MatchString(url)
}
