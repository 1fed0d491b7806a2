package publish

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/sfomuseum/go-flags/flagset"
	"github.com/sfomuseum/go-streetview"
	"github.com/sfomuseum/go-streetview/auth"
	"github.com/sfomuseum/go-streetview/publish"
)

// Run executes the "publish photo" application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the "publish photo" application with a `flag.FlagSet` instance defined by 'fs'.
func RunWithFlagSet(ctx context.Context, fs *flag.FlagSet) error {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "STREETVIEW")

	if err != nil {
		return fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}

	image_path := fs.Arg(0)

	if image_path == "" {
		fs.Usage()
		return fmt.Errorf("Missing image path")
	}

	assigned := assignedFlags(fs)

	if assigned["latitude"] != assigned["longitude"] {
		return fmt.Errorf("Both -latitude and -longitude must be provided together")
	}

	opts := &publish.PublishPhotoOptions{
		PlaceId: place_id,
	}

	if assigned["latitude"] {
		opts.Latitude = &latitude
		opts.Longitude = &longitude
	}

	if assigned["altitude"] {
		opts.Altitude = &altitude
	}

	if assigned["heading"] {
		opts.Heading = &heading
	}

	conf, err := auth.NewConfigFromFile(credentials_path, streetview.STREETVIEW_PUBLISH_SCOPE)

	if err != nil {
		return fmt.Errorf("Failed to derive OAuth2 configuration, %w", err)
	}

	auth_opts := &auth.AuthenticateOptions{
		Config: conf,
		Store:  auth.NewFileStore(token_path),
	}

	sess, err := auth.Authenticate(ctx, auth_opts)

	if err != nil {
		return fmt.Errorf("Failed to authenticate, %w", err)
	}

	fmt.Println("Authentication successful!")

	opts.Client = sess.Client(ctx)

	ph, err := publish.PublishPhoto(ctx, opts, image_path)

	if err != nil {
		return fmt.Errorf("Failed to publish photo, %w", err)
	}

	fmt.Println("Photo uploaded successfully!")
	fmt.Printf("  Photo ID: %s\n", ph.PhotoId)
	fmt.Printf("  Share link: %s\n", ph.ShareLink)
	fmt.Printf("  View count: %d\n", ph.ViewCount)

	return nil
}
