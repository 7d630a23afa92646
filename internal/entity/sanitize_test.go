package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeArchiveName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain name untouched", "Leeds_200623_T20190123_Smith_Jane_ORIG.mp4", "Leeds_200623_T20190123_Smith_Jane_ORIG.mp4"},
		{"qc prefix stripped", "QC_Leeds_200623_Smith.mp4", "Leeds_200623_Smith.mp4"},
		{"qc suffix before extension stripped", "Leeds_200623_Smith_QC.mp4", "Leeds_200623_Smith.mp4"},
		{"numbered qc suffix stripped", "Leeds_200623_Smith_QC2", "Leeds_200623_Smith"},
		{"trailing separator before extension", "Leeds_200623_Smith_.mp4", "Leeds_200623_Smith.mp4"},
		{"separator runs collapsed", "Leeds__200623--Smith.mp4", "Leeds-200623-Smith.mp4"},
		{"surrounding whitespace trimmed", "  Leeds_200623_Smith.mp4 ", "Leeds_200623_Smith.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeArchiveName(tt.in))
		})
	}
}

func TestNameNoExt(t *testing.T) {
	item := ArchiveItem{ArchiveName: "Leeds_200623_Smith.mp4"}
	assert.Equal(t, "Leeds_200623_Smith", item.NameNoExt())

	noExt := ArchiveItem{ArchiveName: "Leeds_200623_Smith"}
	assert.Equal(t, "Leeds_200623_Smith", noExt.NameNoExt())
}
