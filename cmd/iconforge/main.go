package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/provide-io/iconforge/pkg"
	"github.com/provide-io/iconforge/pkg/logging"
)

const version = "0.2.0"

var (
	sourcePath   string
	outputPath   string
	iconPath     string
	assetsDir    string
	exePath      string
	level        string
	logLevel     string
	fullSizeSet  bool
	scaleFolders bool
	versionFlag  bool
	rootCmd      *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exe, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exe); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "iconforge",
		Short: "Generate multi-resolution icons and platform asset families",
		Long:  `iconforge turns one source image into an icon container and a matched family of platform raster assets`,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	iconCmd := &cobra.Command{
		Use:   "icon",
		Short: "Generate a multi-resolution icon container",
		Run:   runIcon,
	}
	iconCmd.Flags().StringVarP(&sourcePath, "input", "i", "", "Source image (SVG or raster, required)")
	iconCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .ico path (required)")
	iconCmd.Flags().BoolVar(&fullSizeSet, "full-set", false, "Use the extended frame size set")
	markRequired(iconCmd, "input", "output")

	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Generate the platform asset family",
		Run:   runAssets,
	}
	assetsCmd.Flags().StringVarP(&sourcePath, "input", "i", "", "Source image (SVG or raster, required)")
	assetsCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output directory (required)")
	assetsCmd.Flags().StringVar(&level, "level", "all", "Requirement level (mandatory, required, optional, all)")
	assetsCmd.Flags().BoolVar(&scaleFolders, "scale-folders", false, "Group scale variants into scale-N/ subdirectories")
	markRequired(assetsCmd, "input", "output")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Generate icon container and asset family concurrently",
		Run:   runAll,
	}
	allCmd.Flags().StringVarP(&sourcePath, "input", "i", "", "Source image (SVG or raster, required)")
	allCmd.Flags().StringVar(&iconPath, "icon-output", "", "Output .ico path (required)")
	allCmd.Flags().StringVar(&assetsDir, "assets-output", "", "Output directory for assets (required)")
	allCmd.Flags().BoolVar(&fullSizeSet, "full-set", false, "Use the extended frame size set")
	allCmd.Flags().StringVar(&level, "level", "all", "Requirement level (mandatory, required, optional, all)")
	allCmd.Flags().BoolVar(&scaleFolders, "scale-folders", false, "Group scale variants into scale-N/ subdirectories")
	markRequired(allCmd, "input", "icon-output", "assets-output")

	embedCmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed an icon container into a Windows executable",
		Run:   runEmbed,
	}
	embedCmd.Flags().StringVarP(&iconPath, "input", "i", "", "Icon container (.ico) to embed (required)")
	embedCmd.Flags().StringVar(&exePath, "exe", "", "Target executable (required)")
	markRequired(embedCmd, "input", "exe")

	rootCmd.AddCommand(iconCmd, assetsCmd, allCmd, embedCmd)
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("iconforge %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runIcon(cmd *cobra.Command, args []string) {
	logger := logging.NewLogger("iconforge", effectiveLogLevel(), os.Stderr)
	if err := pkg.GenerateIcon(sourcePath, outputPath, fullSizeSet, logger); err != nil {
		logger.Error("❌ Icon generation failed", "error", err)
		os.Exit(1)
	}
}

func runAssets(cmd *cobra.Command, args []string) {
	logger := logging.NewLogger("iconforge", effectiveLogLevel(), os.Stderr)
	if _, err := pkg.GenerateAssets(sourcePath, outputPath, level, scaleFolders, logger); err != nil {
		logger.Error("❌ Asset generation failed", "error", err)
		os.Exit(1)
	}
}

func runAll(cmd *cobra.Command, args []string) {
	logger := logging.NewLogger("iconforge", effectiveLogLevel(), os.Stderr)
	if err := pkg.GenerateAll(sourcePath, iconPath, assetsDir, fullSizeSet, level, scaleFolders, logger); err != nil {
		logger.Error("❌ Generation failed", "error", err)
		os.Exit(1)
	}
}

func runEmbed(cmd *cobra.Command, args []string) {
	logger := logging.NewLogger("iconforge", effectiveLogLevel(), os.Stderr)
	if err := pkg.EmbedIcon(exePath, iconPath, logger); err != nil {
		logger.Error("❌ Icon embedding failed", "error", err)
		os.Exit(1)
	}
}

func effectiveLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	return logging.GetLogLevel()
}
