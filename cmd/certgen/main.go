package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/goserg/darts/internal/tlscert"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		ipFlag   string
		certFile string
		keyFile  string
	)
	flag.StringVar(&ipFlag, "ip", "", "ip the certificate is issued for, loopback by default")
	flag.StringVar(&certFile, "cert", "cert.pem", "certificate output file")
	flag.StringVar(&keyFile, "key", "key.pem", "key output file")
	flag.Parse()

	opts := tlscert.Options{
		CertFile: certFile,
		KeyFile:  keyFile,
	}
	if ipFlag != "" {
		ip := net.ParseIP(ipFlag)
		if ip == nil {
			return fmt.Errorf("invalid ip %q", ipFlag)
		}
		opts.IPs = []net.IP{ip}
	}
	return tlscert.Generate(opts)
}
