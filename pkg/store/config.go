package store

import (
	"errors"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings shared by tcutils commands.
type Config interface {
	CatalogFile() string
	Marker() string
	Sort() string
	IgnoreClipboard() bool
	Footer() string
	SnapshotDir() string
}

// Config keys; flags bind to the same names.
const (
	KeyCatalog         = "catalog"
	KeyMarker          = "marker"
	KeySort            = "sort"
	KeyIgnoreClipboard = "ignore_clipboard"
	KeyFooter          = "footer"
	KeySnapshotDir     = "snapshot_dir"
)

// LoadConfig reads .tcutils.yaml from $TCUTILS_CONFIG_PATH, the working
// directory or the home directory, then TCUTILS_* environment variables and
// any flags bound to viper. A missing config file is not an error.
func LoadConfig() (Config, error) {
	viper.SetDefault(KeyCatalog, "list.txt")
	viper.SetDefault(KeyMarker, ".tmp")
	viper.SetDefault(KeySort, "none")
	viper.SetDefault(KeyIgnoreClipboard, false)
	viper.SetDefault(KeyFooter, "comment")
	viper.SetDefault(KeySnapshotDir, filepath.Join(os.TempDir(), "tcutils"))
	viper.SetConfigName(".tcutils") // .yaml is implicit
	viper.SetEnvPrefix("TCUTILS")
	viper.AutomaticEnv()

	if override := os.Getenv("TCUTILS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	snapshotDir, err := homedir.Expand(viper.GetString(KeySnapshotDir))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Catalog:        viper.GetString(KeyCatalog),
		ManifestMarker: viper.GetString(KeyMarker),
		SortName:       viper.GetString(KeySort),
		NoClipboard:    viper.GetBool(KeyIgnoreClipboard),
		FooterStyle:    viper.GetString(KeyFooter),
		SnapshotPath:   snapshotDir,
	}, nil
}

type fileConfig struct {
	Catalog        string `json:"catalog"`
	ManifestMarker string `json:"marker"`
	SortName       string `json:"sort"`
	NoClipboard    bool   `json:"ignore_clipboard"`
	FooterStyle    string `json:"footer"`
	SnapshotPath   string `json:"snapshot_dir"`
}

func (f *fileConfig) CatalogFile() string   { return f.Catalog }
func (f *fileConfig) Marker() string        { return f.ManifestMarker }
func (f *fileConfig) Sort() string          { return f.SortName }
func (f *fileConfig) IgnoreClipboard() bool { return f.NoClipboard }
func (f *fileConfig) Footer() string        { return f.FooterStyle }
func (f *fileConfig) SnapshotDir() string   { return f.SnapshotPath }
