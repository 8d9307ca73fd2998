package catalog

import "testing"

func TestNextPageToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{
			name:   "empty header",
			header: "",
			wantOK: false,
		},
		{
			name:      "single next directive",
			header:    `<https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=abc123&limit=250>; rel="next"`,
			wantToken: "abc123",
			wantOK:    true,
		},
		{
			name:      "previous then next",
			header:    `<https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=prev1>; rel="previous", <https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=next2>; rel="next"`,
			wantToken: "next2",
			wantOK:    true,
		},
		{
			name:      "parameters reordered",
			header:    `<https://shop.myshopify.com/admin/api/2023-10/products.json?limit=250&status=active&page_info=zzz>; rel="next"`,
			wantToken: "zzz",
			wantOK:    true,
		},
		{
			name:   "previous only",
			header: `<https://shop.myshopify.com/admin/api/2023-10/products.json?page_info=prev1>; rel="previous"`,
			wantOK: false,
		},
		{
			name:      "unquoted rel value",
			header:    `<https://shop.myshopify.com/products.json?page_info=tok>; rel=next`,
			wantToken: "tok",
			wantOK:    true,
		},
		{
			name:      "extra attributes on directive",
			header:    `<https://shop.myshopify.com/products.json?page_info=tok>; title="page 2"; rel="next"`,
			wantToken: "tok",
			wantOK:    true,
		},
		{
			name:   "next directive without page_info",
			header: `<https://shop.myshopify.com/products.json?limit=250>; rel="next"`,
			wantOK: false,
		},
		{
			name:   "malformed directive without brackets",
			header: `https://shop.myshopify.com/products.json?page_info=tok; rel="next"`,
			wantOK: false,
		},
		{
			name:      "whitespace around directives",
			header:    `  <https://shop.myshopify.com/products.json?page_info=sp>;  rel="next"  `,
			wantToken: "sp",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := nextPageToken(tt.header)

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if token != tt.wantToken {
				t.Errorf("token = %q, want %q", token, tt.wantToken)
			}
		})
	}
}
