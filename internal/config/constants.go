package config

// Well-known ports inside every node. The peer and election ports are never
// overridden; only the client and broker ports can be mapped to host ports.
const (
	ZookeeperClientPort   = 2181
	ZookeeperPeerPort     = 2888
	ZookeeperElectionPort = 3888
	BrokerPort            = 9092
)

// DefaultNamespace is the image namespace used when none is configured.
const DefaultNamespace = "clusterdock"

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "KAFKA_TOPOLOGY"

// Log formats accepted by the --log-format flag.
const (
	LogFormatAuto    = "auto"
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)
