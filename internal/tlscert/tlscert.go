// Package tlscert issues a self-signed certificate for serving the API over
// HTTPS on a local network.
package tlscert

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net"
	"os"
	"time"
)

var ErrExists = errors.New("certificate already exists")

const validFor = 10 * 365 * 24 * time.Hour

type Options struct {
	CertFile string
	KeyFile  string
	// IPs the certificate is valid for. Loopback when empty.
	IPs  []net.IP
	Bits int
}

// Generate writes a CA signed server certificate and its key. Existing files
// are never overwritten.
func Generate(opts Options) error {
	if exists(opts.CertFile) || exists(opts.KeyFile) {
		return ErrExists
	}
	if len(opts.IPs) == 0 {
		opts.IPs = []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}
	}
	if opts.Bits == 0 {
		opts.Bits = 4096
	}
	now := time.Now()

	ca := &x509.Certificate{
		SerialNumber:          randomSerial(),
		Subject:               subject(),
		NotBefore:             now,
		NotAfter:              now.Add(validFor),
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caKey, err := rsa.GenerateKey(rand.Reader, opts.Bits)
	if err != nil {
		return err
	}

	cert := &x509.Certificate{
		SerialNumber: randomSerial(),
		Subject:      subject(),
		IPAddresses:  opts.IPs,
		NotBefore:    now,
		NotAfter:     now.Add(validFor),
		SubjectKeyId: []byte{1, 2, 3, 4, 6},
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	certKey, err := rsa.GenerateKey(rand.Reader, opts.Bits)
	if err != nil {
		return err
	}
	certBytes, err := x509.CreateCertificate(rand.Reader, cert, ca, &certKey.PublicKey, caKey)
	if err != nil {
		return err
	}

	certPEM, err := encode("CERTIFICATE", certBytes)
	if err != nil {
		return err
	}
	keyPEM, err := encode("RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(certKey))
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.CertFile, certPEM, 0o600); err != nil {
		return err
	}
	return os.WriteFile(opts.KeyFile, keyPEM, 0o600)
}

func subject() pkix.Name {
	return pkix.Name{
		Organization: []string{"Darts Scorer"},
	}
}

func encode(blockType string, der []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := pem.Encode(buf, &pem.Block{
		Type:  blockType,
		Bytes: der,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func randomSerial() *big.Int {
	i, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		panic(err)
	}
	return i
}
