package config

const (
	// DefaultConfigPath is the config file looked up in the working directory.
	// DefaultConfigPath 是在工作目录中查找的配置文件。
	DefaultConfigPath = "advent.yaml"

	// DefaultInputsDir holds puzzle inputs as <year>/<day>.txt.
	// DefaultInputsDir 存放谜题输入，格式为 <year>/<day>.txt。
	DefaultInputsDir = "inputs"

	// DefaultMetricsPath is where the Prometheus textfile is written when enabled.
	DefaultMetricsPath = "advent.prom"

	// Stream split kinds accepted in StreamConfig.Kind.
	SplitByte       = "byte"
	SplitLiteral    = "literal"
	SplitWhitespace = "whitespace"
)
