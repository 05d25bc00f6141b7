/*
File    : vexel/std/crypto.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/stuncs69/vexel/objects"
)

var cryptoMethods = []*Builtin{
	{Name: "crypto_sha256", Callback: cryptoSHA256},
	{Name: "crypto_md5", Callback: cryptoMD5},
	{Name: "crypto_base64_encode", Callback: cryptoBase64Encode},
	{Name: "crypto_base64_decode", Callback: cryptoBase64Decode},
}

func init() {
	register(cryptoMethods)
}

func cryptoSHA256(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	sum := sha256.Sum256([]byte(s))
	return &objects.String{Value: fmt.Sprintf("%x", sum)}, true
}

func cryptoMD5(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	sum := md5.Sum([]byte(s))
	return &objects.String{Value: fmt.Sprintf("%x", sum)}, true
}

func cryptoBase64Encode(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	return &objects.String{Value: base64.StdEncoding.EncodeToString([]byte(s))}, true
}

func cryptoBase64Decode(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	s, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return &objects.String{Value: string(decoded)}, true
}
