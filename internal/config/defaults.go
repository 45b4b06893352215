package config

const (
	defaultCacheDir = "~/.cache/anchor"
	defaultLogDir   = "~/.local/share/anchor/logs"
	defaultWorkDir  = "~/.cache/anchor/work"

	defaultRecognitionCommand = "uvx"
	defaultRecognitionModel   = "large-v3"
	defaultRecognitionDevice  = "cpu"
	defaultComputeType        = "float32"
	defaultRecognitionTimeout = 1800

	defaultSceneGapSeconds  = 5.0
	defaultOutlierThreshold = 1.5
	defaultDriftWindow      = 10
	defaultMinDurationMs    = 600
	defaultGapMs            = 50

	defaultPassOnePadding = 0.5
	defaultPassTwoPadding = 5.0
	defaultAcceptMargin   = 0.3
	defaultMaxMergeGap    = 2

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
			WorkDir:  defaultWorkDir,
		},
		Recognition: Recognition{
			Command:        defaultRecognitionCommand,
			Model:          defaultRecognitionModel,
			Device:         defaultRecognitionDevice,
			ComputeType:    defaultComputeType,
			TimeoutSeconds: defaultRecognitionTimeout,
			CacheEnabled:   true,
		},
		Align: Align{
			SceneGapSeconds:         defaultSceneGapSeconds,
			OutlierThresholdSeconds: defaultOutlierThreshold,
			DriftWindow:             defaultDriftWindow,
			MinDurationMillis:       defaultMinDurationMs,
			GapMillis:               defaultGapMs,
		},
		Repair: Repair{
			Enabled:               true,
			PassOnePaddingSeconds: defaultPassOnePadding,
			PassTwoPaddingSeconds: defaultPassTwoPadding,
			AcceptMargin:          defaultAcceptMargin,
			MaxMergeGap:           defaultMaxMergeGap,
			Denoise:               true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
