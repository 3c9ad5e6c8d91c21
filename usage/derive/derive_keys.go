package main

import (
	"fmt"
	"time"

	"webtable/keys"
	"webtable/page"
)

// deriving keys for one page:
// row key
// size and link buckets
// all index keys
func main() {
	// 1.----row key----
	rowKey := keys.RowKey("blog.example.com", "/2024/03/hello-world")
	fmt.Println(rowKey) // com.example.blog_2024_03_hello-world

	// 2.----buckets----
	fmt.Println(keys.SizeBucket(2500), keys.LinkBucket(7)) // medium_010KB 10

	// 3.----index keys----
	p := &page.Page{
		Domain:       "example.com",
		Path:         "/about",
		URL:          "http://example.com/about",
		ContentSize:  2500,
		Inlinks:      1,
		Outlinks:     7,
		LastModified: page.Unix(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC).Unix()),
	}
	set, err := keys.NewDeriver(time.UTC).IndexKeys(p)
	if err != nil {
		panic(err)
	}
	fmt.Println(set.TimeKey)    // 20240315_com.example_about
	fmt.Println(set.SizeKey)    // medium_010KB_com.example_about
	fmt.Println(set.InlinkKey)  // inlinks_02_com.example_about
	fmt.Println(set.OutlinkKey) // outlinks_10_com.example_about
	fmt.Println(set.URLKey)
}
