package database

import (
	"embed"
	"io/fs"
)

// embeddedMigrations, migrations/ altındaki SQL dosyaları binary'ye gömülür;
// deploy edilen binary yanında migration dizinine ihtiyaç duymaz.
//
//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, gömülü migration dosyalarını kök dizinde sunan fs.FS döner.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// "migrations" derleme zamanında sabit; fs.Sub burada hata veremez.
		panic(err)
	}
	return sub
}
