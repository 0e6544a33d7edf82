/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/raccoonbooks/biblio-cli/internal/util"
	"github.com/spf13/cobra"
)

var exportPush bool

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Snapshot the remote data to local JSON files",
	Long: `export fetches people, books, reservations and fines and writes each
collection to a JSON file in the configured export directory. With --push the
snapshot is also uploaded to the configured S3 bucket. The API stays the
authoritative store; snapshots are read-only backups.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, config, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			return err
		}

		ctx := cmd.Context()

		people, err := client.ListPeople(ctx)
		if err != nil {
			return fmt.Errorf("❌ Failed to fetch people: %w", err)
		}
		books, err := client.ListBooks(ctx)
		if err != nil {
			return fmt.Errorf("❌ Failed to fetch books: %w", err)
		}
		reservations, err := client.ListReservations(ctx)
		if err != nil {
			return fmt.Errorf("❌ Failed to fetch reservations: %w", err)
		}
		fines, err := client.ListFines(ctx)
		if err != nil {
			return fmt.Errorf("❌ Failed to fetch fines: %w", err)
		}

		exportDir := config.Export.Dir
		var files []string

		for _, snapshot := range []struct {
			name string
			data any
		}{
			{"pessoas", people},
			{"livros", books},
			{"reservas", reservations},
			{"multas", fines},
		} {
			filePath, err := util.WriteSnapshot(exportDir, snapshot.name, snapshot.data)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Wrote %s\n", filePath)
			files = append(files, filePath)
		}

		metadata, err := util.GenerateMetadata(exportDir)
		if err != nil {
			return err
		}
		metadataPath := filepath.Join(exportDir, "metadata.json")
		if err := util.SaveMetadata(metadataPath, metadata); err != nil {
			return err
		}
		files = append(files, metadataPath)

		if !exportPush {
			return nil
		}

		if config.Export.Bucket == "" {
			log.Printf("❌ No export bucket configured, cannot push\n")
			os.Exit(1)
		}

		s3Client, err := util.NewS3Client(ctx, *config)
		if err != nil {
			return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
		}

		log.Println("🔄 Uploading snapshot to S3...")
		for _, filePath := range files {
			s3Key := "exports/" + filepath.Base(filePath)
			if err := util.UploadToS3(ctx, s3Client, config.Export.Bucket, filePath, s3Key); err != nil {
				return err
			}
		}

		log.Println("✅ Snapshot pushed to S3.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportPush, "push", false, "Upload the snapshot to S3")
}
