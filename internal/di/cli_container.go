package di

import (
	"flag"

	"github.com/spf13/viper"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/config"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/logging"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Input flags
	Message   string
	InputFile string

	// Model flags
	VectorizerPath string
	ClassifierPath string
	SpamClass      string
	ModelName      string

	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := BindFlags(flag.CommandLine)
	flag.Parse()
	return flags
}

// BindFlags registers the CLI flags on fs without parsing
func BindFlags(fs *flag.FlagSet) *CLIFlags {
	flags := &CLIFlags{}

	// Input flags
	fs.StringVar(&flags.Message, "message", "", "Message to classify (takes precedence over -file and stdin)")
	fs.StringVar(&flags.InputFile, "file", "", "Input message file (use stdin if not specified)")

	// Model flags
	fs.StringVar(&flags.VectorizerPath, "vectorizer", "", "Path to the vectorizer artifact")
	fs.StringVar(&flags.ClassifierPath, "model", "", "Path to the classifier artifact")
	fs.StringVar(&flags.SpamClass, "spam-class", "", "Raw classifier output that means spam")
	fs.StringVar(&flags.ModelName, "model-name", "", "Display name of the model")

	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file (model flags still override it)")

	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.NewFromFile(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			applyFlags(cfg.GetViper(), flags)
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	if err := provideDetector(container); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()
	applyFlags(v, flags)
	return config.NewFromViper(v)
}

// applyFlags lays the explicitly set flags over v
func applyFlags(v *viper.Viper, flags *CLIFlags) {
	// Set some cli specific settings
	v.Set("server.filter_type", "cli")
	v.Set("cli.verbose", flags.Verbose)

	if flags.VectorizerPath != "" {
		v.Set("model.vectorizer_path", flags.VectorizerPath)
	}
	if flags.ClassifierPath != "" {
		v.Set("model.classifier_path", flags.ClassifierPath)
	}
	if flags.SpamClass != "" {
		v.Set("model.spam_class", flags.SpamClass)
	}
	if flags.ModelName != "" {
		v.Set("model.name", flags.ModelName)
	}
}
