// Package main Darkroom API
//
//	@title			Darkroom API
//	@version		1.0
//	@description	Event photo drop box: signed upload URLs and SMS notification sign-up.
//
//	@license.name	MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@tag.name			Photos
//	@tag.description	Signed upload URLs for guest photos
//
//	@tag.name			Notify
//	@tag.description	SMS notification sign-up
package main
