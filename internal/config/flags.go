package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Only flags the user actually set
// are applied on top of the file configuration.
type Flags struct {
	fs *pflag.FlagSet

	Config       string
	Debug        bool
	LogFile      string
	Segments     int
	Subdivisions int
	StartWidth   float32
	EndWidth     float32
	Inside       bool
	ShowNodes    bool
	Output       string
	Format       string
}

// BindFlags registers the override flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVarP(&f.Config, "config", "c", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file as well")
	fs.IntVar(&f.Segments, "segments", 0, "Vertices around each ring")
	fs.IntVar(&f.Subdivisions, "subdivisions", 0, "Centerline samples per control interval")
	fs.Float32Var(&f.StartWidth, "start-width", 0, "Ring size at the first control point")
	fs.Float32Var(&f.EndWidth, "end-width", 0, "Ring size toward the last control point")
	fs.BoolVar(&f.Inside, "inside", false, "Face normals inward")
	fs.BoolVar(&f.ShowNodes, "show-nodes", false, "Emit debug markers at control points")
	fs.StringVarP(&f.Output, "output", "o", "", "Output file")
	fs.StringVar(&f.Format, "format", "", "Output format (obj, msgpack)")
	return f
}

// ConfigPath returns the explicit config path if provided via --config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.Config
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.changed("log-file") {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.changed("segments") {
		cfg.Tube.Segments = f.Segments
	}
	if f.changed("subdivisions") {
		cfg.Tube.Subdivisions = f.Subdivisions
	}
	if f.changed("start-width") {
		cfg.Tube.StartWidth = f.StartWidth
	}
	if f.changed("end-width") {
		cfg.Tube.EndWidth = f.EndWidth
	}
	if f.changed("inside") {
		cfg.Tube.Inside = f.Inside
	}
	if f.changed("show-nodes") {
		cfg.Nodes.Show = f.ShowNodes
	}
	if f.changed("output") {
		cfg.Output.Path = f.Output
	}
	if f.changed("format") {
		cfg.Output.Format = f.Format
	}
}
