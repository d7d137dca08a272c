package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gooze.dev/pkg/mutanalysis/internal/adapter"
	"gooze.dev/pkg/mutanalysis/internal/domain"
	m "gooze.dev/pkg/mutanalysis/internal/model"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutanalysis"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName            = "output"
	excludeFlagName           = "exclude"
	reportNameFlagName        = "report-name"
	verboseFlagName           = "verbose"
	parallelFlagName          = "parallel"
	onUnknownOperatorFlagName = "on-unknown-operator"
	excludeNoCoverageFlagName = "exclude-no-coverage"
	minScoreFlagName          = "min-score"
	disableRuleFlagName       = "disable-rule"
	coverageThresholdFlagName = "coverage-threshold"
	metricsFileFlagName       = "metrics-file"
	summaryFileFlagName       = "summary-file"
	shardFlagName             = "shard"

	excludeConfigKey           = "paths.exclude"
	reportNameConfigKey        = "paths.report_name"
	parallelConfigKey          = "analysis.parallel"
	onUnknownOperatorConfigKey = "analysis.on_unknown_operator"
	excludeNoCoverageConfigKey = "analysis.exclude_no_coverage"
	minScoreConfigKey          = "analysis.min_score"
	disabledRulesConfigKey     = "rules.disabled"
	coverageThresholdConfigKey = "rules.coverage_threshold"
	metricsFileConfigKey       = "metrics.textfile"
	summaryFileConfigKey       = "summary.file"

	defaultReportsDir        = ".mutanalysis"
	defaultReportName        = adapter.DefaultReportName
	defaultParallel          = 4
	defaultOnUnknownOperator = string(domain.OnUnknownOperatorSkip)
	defaultExcludeNoCoverage = false
	defaultMinScore          = 0.0
	defaultCoverageThreshold = domain.DefaultCoverageThreshold

	envPrefix = "MUTANALYSIS"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutanalysis.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(reportNameConfigKey, defaultReportName)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(onUnknownOperatorConfigKey, defaultOnUnknownOperator)
	viper.SetDefault(excludeNoCoverageConfigKey, defaultExcludeNoCoverage)
	viper.SetDefault(minScoreConfigKey, defaultMinScore)
	viper.SetDefault(disabledRulesConfigKey, []string{})
	viper.SetDefault(coverageThresholdConfigKey, defaultCoverageThreshold)
	viper.SetDefault(metricsFileConfigKey, "")
	viper.SetDefault(summaryFileConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	readConfig(viper.GetViper())
}

// readConfig loads the config file into v. A missing file is not an error.
func readConfig(v *viper.Viper) {
	err := v.ReadInConfig()
	if err == nil {
		return
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return
	}

	slog.Warn("Failed to read config file, using defaults", "path", v.ConfigFileUsed(), "error", err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func profileArgsFromConfig() domain.ProfileArgs {
	return domain.ProfileArgs{
		DisabledRules:     viper.GetStringSlice(disabledRulesConfigKey),
		CoverageThreshold: viper.GetFloat64(coverageThresholdConfigKey),
	}
}

func scorePolicyFromConfig() m.ScorePolicy {
	return m.ScorePolicy{ExcludeNoCoverage: viper.GetBool(excludeNoCoverageConfigKey)}
}

// analyzeArgsFromConfig builds AnalyzeArgs from positional paths and the
// merged flag, env and config file values.
func analyzeArgsFromConfig(args []string) (domain.AnalyzeArgs, error) {
	onUnknown, err := domain.ParseUnknownOperatorPolicy(viper.GetString(onUnknownOperatorConfigKey))
	if err != nil {
		return domain.AnalyzeArgs{}, err
	}

	return domain.AnalyzeArgs{
		ProfileArgs:       profileArgsFromConfig(),
		Paths:             parsePaths(args),
		Exclude:           viper.GetStringSlice(excludeConfigKey),
		ReportName:        viper.GetString(reportNameConfigKey),
		Output:            m.Path(viper.GetString(outputFlagName)),
		Threads:           viper.GetInt(parallelConfigKey),
		OnUnknownOperator: onUnknown,
		Policy:            scorePolicyFromConfig(),
		MinScore:          viper.GetFloat64(minScoreConfigKey),
		MetricsFile:       m.Path(viper.GetString(metricsFileConfigKey)),
		SummaryFile:       m.Path(viper.GetString(summaryFileConfigKey)),
	}, nil
}
