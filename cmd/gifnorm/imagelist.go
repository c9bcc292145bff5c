package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gifnorm/internal/imagelist"
)

var (
	imagesDir string
	imagesOut string
)

var imagelistCmd = &cobra.Command{
	Use:   "imagelist",
	Short: "Write a JSON array of the image files in a directory",
	Long: `imagelist scans a directory (non-recursively) for .jpg, .jpeg, .png and
.gif files and writes their paths as a sorted JSON array, ready to be served
alongside a static site.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := imagelist.Generate(imagesDir, imagesOut)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d images)\n", imagesOut, n)
		return nil
	},
}

func init() {
	imagelistCmd.Flags().StringVar(&imagesDir, "images-dir", "static/images", "Directory to scan for images")
	imagelistCmd.Flags().StringVar(&imagesOut, "out", "static/images.json", "Output JSON file path")
	rootCmd.AddCommand(imagelistCmd)
}
