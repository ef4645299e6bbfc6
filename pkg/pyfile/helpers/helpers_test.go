package helpers

import "testing"

func TestReadBufferSize(t *testing.T) {
	tests := []struct {
		name     string
		fileSize int64
		want     func(got int) bool
	}{
		{
			name:     "zero size gets the base size",
			fileSize: 0,
			want:     func(got int) bool { return got == 4*1024 },
		},
		{
			name:     "small file gets its own size",
			fileSize: 100,
			want:     func(got int) bool { return got == 100 },
		},
		{
			name:     "large file is capped at 1MB",
			fileSize: 1 << 30,
			want:     func(got int) bool { return got >= 4*1024 && got <= 1024*1024 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadBufferSize(tt.fileSize); !tt.want(got) {
				t.Errorf("ReadBufferSize(%d) = %d", tt.fileSize, got)
			}
		})
	}
}
