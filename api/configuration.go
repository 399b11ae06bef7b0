package api

import "time"

type Configuration struct {
	Env     string
	AppName string
	Port    string

	// CartfulAppUrl is the deployed web client origin, allowed through CORS.
	CartfulAppUrl string

	DefaultTimeout time.Duration
}
