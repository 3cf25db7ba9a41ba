package meta

var (
	AppVersion = "v1.x"
)

const (
	AppName = "cibyl"

	AppDescription = "A CLI tool for querying CI/CD environments and the systems configured in them"

	ConfigFileName  = "cibyl.yaml"
	ConfigDirPrefix = ".cibyl"

	EnvVarPrefix = "CIBYL_"

	UserConfigDir   = ".config/cibyl"
	SystemConfigDir = "/etc/cibyl"

	LogFileName = "cibyl.log"
)
