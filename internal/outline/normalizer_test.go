package outline

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \n\t\r\n  \n",
			expected: "",
		},
		{
			name:     "three digit timestamp",
			input:    "Armbar 123",
			expected: "01:23 - Armbar",
		},
		{
			name:     "long timestamp widens the block",
			input:    "Intro 0:05\nDeep Dive 1:02:33",
			expected: "0:00:05 - Intro\n1:02:33 - Deep Dive",
		},
		{
			name:     "three digit timestamp in long block",
			input:    "armbar 123\ndeep dive 1:02:33",
			expected: "0:01:23 - Armbar\n1:02:33 - Deep Dive",
		},
		{
			name:     "width is decided per block",
			input:    "A 1:00\nB 1:00:00\n\nC 2:00",
			expected: "0:01:00 - A\n1:00:00 - B\n\n02:00 - C",
		},
		{
			name:     "no blank after header",
			input:    "Volume 1\n\nIntro 0:30\n",
			expected: "Volume 1\n00:30 - Intro",
		},
		{
			name:     "blank inserted before header after content",
			input:    "intro 0:10\nvolume 2\narmbar 1:00",
			expected: "00:10 - Intro\n\nVolume 2\n01:00 - Armbar",
		},
		{
			name:     "several blanks after header are all skipped",
			input:    "DVD 1\n\n\n\nSweeps 4:10",
			expected: "Dvd 1\n04:10 - Sweeps",
		},
		{
			name:     "dangling punctuation stripped",
			input:    "Guard Passing - (1:15)",
			expected: "01:15 - Guard Passing",
		},
		{
			name:     "en dash and plus stripped",
			input:    "Leg Locks +– 12:04",
			expected: "12:04 - Leg Locks",
		},
		{
			name:     "closing paren of a word kept",
			input:    "Armbar (Gi) 1:00",
			expected: "01:00 - Armbar (gi)",
		},
		{
			name:     "plus signs of a word kept",
			input:    "Back Take C++ 3:00",
			expected: "03:00 - Back Take C++",
		},
		{
			name:     "internal whitespace collapsed",
			input:    "   half    guard\tsweeps   3:07  ",
			expected: "03:07 - Half Guard Sweeps",
		},
		{
			name:     "table markers removed",
			input:    "CHAPTER TITLE START TIME\nKimura 2:05",
			expected: "02:05 - Kimura",
		},
		{
			name:     "markers inside a line",
			input:    "CHAPTER TITLEKimura Trap START TIME2:05",
			expected: "02:05 - Kimura Trap",
		},
		{
			name:     "crlf input",
			input:    "Volume 1\r\nArmbar 1:00\r\n\r\nTriangle 2:00\r\n",
			expected: "Volume 1\n01:00 - Armbar\n\n02:00 - Triangle",
		},
		{
			name:     "consecutive blanks collapse",
			input:    "A 1:00\n\n\n\nB 2:00",
			expected: "01:00 - A\n\n02:00 - B",
		},
		{
			name:     "first timestamp wins",
			input:    "Part 2 at 12:30 then 14:00",
			expected: "12:30 - Part 2 At",
		},
		{
			name:     "header is case insensitive",
			input:    "VOLUME 10: BACK TAKES\nseatbelt 0:45",
			expected: "Volume 10: Back Takes\n00:45 - Seatbelt",
		},
		{
			name:     "header without space",
			input:    "dvd3 the guard",
			expected: "Dvd3 the Guard",
		},
		{
			name:     "header wins over timestamp",
			input:    "Volume 1 0:00",
			expected: "Volume 1 0:00",
		},
		{
			name:     "small words in entries",
			input:    "the art of the takedown 5:00",
			expected: "05:00 - The Art of the Takedown",
		},
		{
			name:     "timestamp with no content",
			input:    "0:30 Intro",
			expected: "00:30 -",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeDropsUnparseableLines(t *testing.T) {
	// Lines with neither a header prefix nor a timestamp are removed.
	assert.Equal(t, "01:00 - Armbar", Normalize("Introduction\nArmbar 1:00\nthanks for watching"))
	assert.Equal(t, "", Normalize("Chapter 2024"))
	assert.Equal(t, "", Normalize("abc123"))
}

func TestNormalizeNeverBlankAfterHeader(t *testing.T) {
	// A dropped line clears the header state, the blank is still held back.
	assert.Equal(t, "Volume 1\n01:00 - Armbar", Normalize("Volume 1\nnotes here\n\nArmbar 1:00"))
	assert.Equal(t, "Volume 1\nVolume 2\n01:00 - A", Normalize("Volume 1\nVolume 2\nA 1:00"))
	assert.Equal(t, "01:00 - A\n\nVolume 1\nVolume 2", Normalize("A 1:00\nVolume 1\n\nVolume 2"))
}

func TestNormalizerWithMarkers(t *testing.T) {
	n := New(WithMarkers([]string{"TIMESTAMP"}))
	assert.Equal(t, "01:00 - Armbar", n.Normalize("TIMESTAMP\nArmbar 1:00"))
	assert.Equal(t, "", n.Normalize("CHAPTER TITLE"), "default markers are replaced, so the line is dropped")

	none := New(WithMarkers(nil))
	assert.Equal(t, "01:00 - Chapter Title Armbar", none.Normalize("CHAPTER TITLE armbar 1:00"))
}

func TestNormalizerLogsDroppedLines(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	n := New(WithLogger(logrus.NewEntry(logger)))
	assert.Equal(t, "01:00 - Armbar", n.Normalize("Welcome!\nArmbar 1:00"))
	assert.Contains(t, buf.String(), "Dropped line")
	assert.Contains(t, buf.String(), "Welcome!")
}

func TestParse(t *testing.T) {
	o := Parse("Volume 1\nIntro 0:30\nnoise\n\nVolume 2\nArmbar 1:02:03")

	require.Len(t, o.Lines, 5)
	assert.Equal(t, Line{Kind: KindHeader, Text: "Volume 1", Title: "Volume 1"}, o.Lines[0])
	assert.Equal(t, Line{Kind: KindEntry, Text: "00:30 - Intro", Timestamp: "00:30", Title: "Intro"}, o.Lines[1])
	assert.Equal(t, Line{Kind: KindBlank}, o.Lines[2])
	assert.Equal(t, KindHeader, o.Lines[3].Kind)
	assert.Equal(t, "1:02:03", o.Lines[4].Timestamp)

	assert.Equal(t, 1, o.Dropped)
	assert.Len(t, o.Headers(), 2)
	assert.Len(t, o.Entries(), 2)
	assert.Equal(t, "Volume 1\n00:30 - Intro\n\nVolume 2\n1:02:03 - Armbar", o.String())
}

func TestKindMarshalText(t *testing.T) {
	for k, want := range map[Kind]string{KindBlank: "blank", KindHeader: "header", KindEntry: "entry", KindOther: "other"} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(b))
	}
}

func TestNormalizeSpacingInvariants(t *testing.T) {
	pool := []string{
		"", "", " ", "Volume 1", "DVD 2", "volume3 extra", "Intro 0:05", "Deep Dive 1:02:33",
		"Armbar 123", "noise", "CHAPTER TITLE", "START TIME", "Guard - (4:15)", "\t",
	}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		n := rng.Intn(14)
		lines := make([]string, n)
		for j := range lines {
			lines[j] = pool[rng.Intn(len(pool))]
		}
		input := strings.Join(lines, "\n")
		out := Normalize(input)
		if out == "" {
			continue
		}

		got := strings.Split(out, "\n")
		assert.NotEmpty(t, got[0], "leading blank for %q", input)
		assert.NotEmpty(t, got[len(got)-1], "trailing blank for %q", input)
		for j := 1; j < len(got); j++ {
			if got[j] != "" {
				continue
			}
			assert.NotEmpty(t, got[j-1], "double blank for %q", input)
			assert.False(t, IsHeader(got[j-1]), "blank after header for %q", input)
		}
	}
}
