// cmd/hashpw/main.go
//
// Prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
package main

import (
	"fmt"
	"log"
	"os"

	"wedding-back/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: hashpw <password>")
	}
	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
