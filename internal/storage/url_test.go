package storage

import "testing"

func TestKeyFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "virtual-hosted s3",
			url:  "https://my-bucket.s3.amazonaws.com/resumes/u1/abc/resume.pdf.txt",
			want: "resumes/u1/abc/resume.pdf.txt",
		},
		{
			name: "gcs public url",
			url:  "https://storage.googleapis.com/my-bucket/pages/u1/pages-c1/index.html",
			want: "pages/u1/pages-c1/index.html",
		},
		{
			name: "custom endpoint path style",
			url:  "https://acc.r2.cloudflarestorage.com/my-bucket/resumes/u1/x/r.txt",
			want: "resumes/u1/x/r.txt",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := KeyFromURL(tc.url)
			if err != nil {
				t.Fatalf("KeyFromURL: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKeyFromURLMalformed(t *testing.T) {
	for _, u := range []string{"", "https://", "https://host", "https://my-bucket.s3.amazonaws.com/"} {
		if _, err := KeyFromURL(u); err == nil {
			t.Errorf("KeyFromURL(%q) should fail", u)
		}
	}
}
