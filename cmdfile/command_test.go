package cmdfile

import (
	"errors"
	"reflect"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		m    Mutation
		want string
	}{
		{
			"empty", Mutation{}, "put '', '', '', ''",
		},
		{
			"main-cell", Mutation{Table: "webtable", Row: "com.example_about", Column: "content:size", Value: "2500"},
			"put 'webtable', 'com.example_about', 'content:size', '2500'",
		},
		{
			"index-ref", Mutation{Table: "webtable_url_idx", Row: "0a1b2c3d4e5f6a7b", Column: "ref:rowkey", Value: "com.example_about"},
			"put 'webtable_url_idx', '0a1b2c3d4e5f6a7b', 'ref:rowkey', 'com.example_about'",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Encode(tc.m); got != tc.want {
				t.Errorf("Encode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Mutation
		wantErr bool
	}{
		{
			"normal", "put 'webtable', 'com.example_about', 'metadata:title', 'About: Hello.'",
			Mutation{Table: "webtable", Row: "com.example_about", Column: "metadata:title", Value: "About: Hello."}, false,
		},
		{
			"crlf", "put 'webtable', 'r', 'content:size', '1'\r\n",
			Mutation{Table: "webtable", Row: "r", Column: "content:size", Value: "1"}, false,
		},
		{
			"quote-in-value", "put 'webtable', 'r', 'content:html', 'it's'",
			Mutation{Table: "webtable", Row: "r", Column: "content:html", Value: "it's"}, false,
		},
		{
			"separator-in-value", "put 'webtable', 'r', 'outlinks:urls', 'a', 'b'",
			Mutation{Table: "webtable", Row: "r", Column: "outlinks:urls", Value: "a', 'b"}, false,
		},
		{
			"empty-value", "put 'webtable', 'r', 'inlinks:urls', ''",
			Mutation{Table: "webtable", Row: "r", Column: "inlinks:urls"}, false,
		},
		{"not-put", "get 'webtable', 'r'", Mutation{}, true},
		{"too-few-fields", "put 'webtable', 'r', 'c'", Mutation{}, true},
		{"unquoted", "put webtable, 'r', 'c', 'v'", Mutation{}, true},
		{"unterminated-value", "put 'webtable', 'r', 'c', 'v", Mutation{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.line)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse() err = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("Parse() err = %v, want ErrInvalidCommand", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Parse() got = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParse_EncodeRoundTrip(t *testing.T) {
	m := Mutation{Table: "webtable_link_idx", Row: "outlinks_10_com.example_about", Column: "ref:rowkey", Value: "com.example_about"}
	got, err := Parse(Encode(m))
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Errorf("Parse(Encode()) = %+v, want %+v", got, m)
	}
}

func TestMutation_Family(t *testing.T) {
	if got := (Mutation{Column: "metadata:url"}).Family(); got != "metadata" {
		t.Errorf("Family() = %v", got)
	}
	if got := (Mutation{Column: "bare"}).Family(); got != "bare" {
		t.Errorf("Family() = %v", got)
	}
}
