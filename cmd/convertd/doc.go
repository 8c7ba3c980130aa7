// Command convertd runs the conversion server. It generates an RSA keypair
// at startup (memory only), accepts client key registrations, and converts
// encrypted uploads with ffmpeg, returning results encrypted to the
// uploader's registered key.
package main
