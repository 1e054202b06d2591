package main

// Unexported wiring exposed to the main_test package.
var (
	NeedsFetcher  = needsFetcher
	SitemapClient = sitemapClient
)
