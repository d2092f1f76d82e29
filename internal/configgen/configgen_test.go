package configgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/kafka-topology/internal/config"
	"github.com/imamik/kafka-topology/internal/topology"
)

const brokerTemplate = `# The id of the broker. This must be set to a unique integer for each broker.
broker.id=0

num.network.threads=3
log.dirs=/tmp/kafka-logs
zookeeper.connect=localhost:2181
`

func buildTopology(t *testing.T, cfg *config.Config) *topology.Topology {
	t.Helper()
	topo, err := topology.Build(cfg)
	require.NoError(t, err)
	return topo
}

func TestCoordination_MemberLines(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 5} {
		t.Run(fmt.Sprintf("%d nodes", n), func(t *testing.T) {
			t.Parallel()
			hosts := make([]string, n)
			for i := range hosts {
				hosts[i] = fmt.Sprintf("node-%d.cluster", i+1)
			}
			topo := buildTopology(t, &config.Config{Brokers: hosts})

			text := CoordinationText(topo)

			var members []string
			for _, line := range strings.Split(text, "\n") {
				if strings.HasPrefix(line, "server.") {
					members = append(members, line)
				}
			}
			require.Len(t, members, n)
			for i, line := range members {
				assert.Equal(t, fmt.Sprintf("server.%d=node-%d.cluster:2888:3888", i, i+1), line)
			}
		})
	}
}

func TestCoordination_BaseParameters(t *testing.T) {
	t.Parallel()

	topo := buildTopology(t, &config.Config{Brokers: []string{"a", "b"}})

	want := "tickTime=2000\n" +
		"dataDir=/zookeeper\n" +
		"clientPort=2181\n" +
		"initLimit=5\n" +
		"syncLimit=2\n" +
		"server.0=a:2888:3888\n" +
		"server.1=b:2888:3888\n"
	assert.Equal(t, want, CoordinationText(topo))
}

func TestCoordination_IgnoresPortOverrides(t *testing.T) {
	t.Parallel()

	topo := buildTopology(t, &config.Config{
		Brokers:        []string{"a", "b"},
		ZookeeperPorts: []int{12181, 22181},
	})

	doc := Coordination(topo)
	port, ok := doc.Get("clientPort")
	require.True(t, ok)
	assert.Equal(t, "2181", port)
}

func TestMemberID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0", MemberID(0))
	assert.Equal(t, "12", MemberID(12))
}

func TestBroker_RewritesIdentity(t *testing.T) {
	t.Parallel()

	topo := buildTopology(t, &config.Config{Brokers: []string{"a", "b", "c"}})

	for _, node := range topo.Nodes {
		out, result := Broker(brokerTemplate, node, "", false)

		assert.True(t, result.IdentityRewritten)
		assert.Empty(t, result.AdvertisedListener)
		assert.Equal(t, 1, strings.Count(out, "broker.id="))
		assert.Contains(t, out, fmt.Sprintf("broker.id=%d\n", node.Ordinal))
		assert.NotContains(t, out, AdvertisedListenersKey)
		assert.Equal(t, strings.Replace(brokerTemplate, "broker.id=0", fmt.Sprintf("broker.id=%d", node.Ordinal), 1), out)
	}
}

func TestBroker_TemplateWithoutDefaultIdentity(t *testing.T) {
	t.Parallel()

	templates := []string{
		"num.network.threads=3\nlog.dirs=/tmp/kafka-logs\n",
		"broker.id=${BROKER_ID}\n",
		"",
	}
	node := topology.NodeDescriptor{Hostname: "b", Ordinal: 1, Broker: topology.PortMapping{Internal: 9092}}

	for _, tmpl := range templates {
		out, result := Broker(tmpl, node, "", false)
		assert.Equal(t, tmpl, out)
		assert.False(t, result.IdentityRewritten)
	}
}

func TestBroker_AdvertisedListener(t *testing.T) {
	t.Parallel()

	overridden := buildTopology(t, &config.Config{
		Brokers:      []string{"a", "b"},
		ClusterPorts: []int{19092, 29092},
	})
	plain := buildTopology(t, &config.Config{Brokers: []string{"a", "b"}})

	tests := []struct {
		name       string
		topo       *topology.Topology
		publicHost string
		want       string
	}{
		{"public host and port overrides", overridden, "kafka.example.com", "advertised.listeners=PLAINTEXT://kafka.example.com:29092\n"},
		{"port overrides without public host", overridden, "", ""},
		{"public host without port overrides", plain, "kafka.example.com", ""},
		{"neither", plain, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, result := Broker(brokerTemplate, tt.topo.Nodes[1], tt.publicHost, tt.topo.BrokerPortsOverridden)

			if tt.want == "" {
				assert.NotContains(t, out, AdvertisedListenersKey)
				assert.Empty(t, result.AdvertisedListener)
				return
			}
			assert.True(t, strings.HasSuffix(out, tt.want), "got %q", out)
			assert.Equal(t, 1, strings.Count(out, AdvertisedListenersKey))
			assert.Equal(t, "PLAINTEXT://kafka.example.com:29092", result.AdvertisedListener)
		})
	}
}

func TestBroker_AdvertisedListenerWithoutIdentityToken(t *testing.T) {
	t.Parallel()

	topo := buildTopology(t, &config.Config{Brokers: []string{"a"}, ClusterPorts: []int{19092}})
	out, result := Broker("log.dirs=/tmp/kafka-logs\n", topo.Nodes[0], "kafka.example.com", true)

	assert.False(t, result.IdentityRewritten)
	assert.Equal(t, "log.dirs=/tmp/kafka-logs\nadvertised.listeners=PLAINTEXT://kafka.example.com:19092\n", out)
}
