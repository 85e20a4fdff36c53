package service_test

import "net/url"

func mustQuery(link string) url.Values {
	u, err := url.Parse(link)
	if err != nil {
		panic(err)
	}
	return u.Query()
}
