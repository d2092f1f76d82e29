package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverProperties = `# Licensed to the Apache Software Foundation (ASF)
############################# Server Basics #############################

# The id of the broker. This must be set to a unique integer for each broker.
broker.id=0

#listeners=PLAINTEXT://:9092
num.network.threads=3
log.dirs=/tmp/kafka-logs
zookeeper.connect: localhost:2181
`

func TestParse_RoundTripUnmodified(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"a=1",
		"a=1\n",
		serverProperties,
		"  spaced.key  =  spaced value  \n\n\n",
	}

	for _, in := range inputs {
		assert.Equal(t, in, Parse(in).String())
	}
}

func TestParse_IndexesEntries(t *testing.T) {
	t.Parallel()

	doc := Parse(serverProperties)

	assert.Equal(t, []string{"broker.id", "num.network.threads", "log.dirs", "zookeeper.connect"}, doc.Keys())
	assert.Equal(t, 4, doc.Len())

	v, ok := doc.Get("zookeeper.connect")
	require.True(t, ok)
	assert.Equal(t, "localhost:2181", v)

	_, ok = doc.Get("listeners")
	assert.False(t, ok, "commented entries are not indexed")
}

func TestGet_LastOccurrenceWins(t *testing.T) {
	t.Parallel()

	doc := Parse("a=1\na=2\n")
	v, ok := doc.Get("a")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestSet_RewritesInPlace(t *testing.T) {
	t.Parallel()

	doc := Parse("a=1\nb=2\nc=3\n")
	doc.Set("b", "20")

	assert.Equal(t, "a=1\nb=20\nc=3\n", doc.String())
}

func TestSet_AppendsBeforeTrailingNewline(t *testing.T) {
	t.Parallel()

	doc := Parse("a=1\n")
	doc.Set("b", "2")

	assert.Equal(t, "a=1\nb=2\n", doc.String())
}

func TestSet_AppendsWithoutTrailingNewline(t *testing.T) {
	t.Parallel()

	doc := Parse("a=1")
	doc.Set("b", "2")

	assert.Equal(t, "a=1\nb=2\n", doc.String())
}

func TestNew_BuildsDocument(t *testing.T) {
	t.Parallel()

	doc := New()
	assert.Equal(t, "", doc.String())
	assert.Zero(t, doc.Len())

	doc.Set("tickTime", "2000")
	doc.Set("dataDir", "/zookeeper")

	assert.Equal(t, "tickTime=2000\ndataDir=/zookeeper\n", doc.String())
}
