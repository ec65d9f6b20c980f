// Command ggtrctl is a thin front-end over the ggtr container library:
// insert files, query them back by locator, relocate the container, or
// print its current size.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/GRGSIBERIA/ggtr"
)

const defaultChunkSize = 256 << 20 // 256MiB

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "insert":
		err = cmdInsert(os.Args[2:])
	case "query":
		err = cmdQuery(os.Args[2:])
	case "move":
		err = cmdMove(os.Args[2:])
	case "stat":
		err = cmdStat(os.Args[2:])
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("ggtrctl %s: %v", os.Args[1], err)
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage: ggtrctl <insert|query|move|stat> [options]")
}

func chunkSizeFlag(fs *flag.FlagSet) *int64 {
	def := int64(defaultChunkSize)
	if v := os.Getenv("GGTR_CHUNK_SIZE"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			def = parsed
		}
	}
	return fs.Int64("chunk-size", def, "region growth increment in bytes")
}

// resolveDBPath returns the container path a subcommand should open:
// rest[0] if the caller supplied one, else GGTR_DB_PATH from the
// environment. Returns the remaining positional args alongside it.
func resolveDBPath(rest []string) (string, []string, error) {
	if len(rest) > 0 {
		return rest[0], rest[1:], nil
	}
	if dbPath := os.Getenv("GGTR_DB_PATH"); dbPath != "" {
		return dbPath, rest, nil
	}
	return "", nil, fmt.Errorf("no database path given and GGTR_DB_PATH is not set")
}

func openContainer(path string, chunkSize int64) (*ggtr.FileSystem, error) {
	return ggtr.New(path, chunkSize)
}

func cmdInsert(args []string) error {
	fs := flag.NewFlagSet("insert", flag.ExitOnError)
	chunkSize := chunkSizeFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	dbPath, files, err := resolveDBPath(fs.Args())
	if err != nil {
		return err
	}
	if len(files) < 1 {
		return fmt.Errorf("usage: ggtrctl insert <dbpath> <file>...")
	}

	db, err := openContainer(dbPath, *chunkSize)
	if err != nil {
		return err
	}

	if len(files) == 1 {
		data, err := os.ReadFile(files[0])
		if err != nil {
			return err
		}
		info, err := db.Insert(data)
		if err != nil {
			return err
		}
		fmt.Printf("%d,%d\n", info.Offset, info.Size)
		return nil
	}

	blobs := make([][]byte, len(files))
	for i, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		blobs[i] = data
	}

	infos, err := db.InsertMany(blobs)
	if err != nil {
		return err
	}
	for _, info := range infos {
		fmt.Printf("%d,%d\n", info.Offset, info.Size)
	}
	return nil
}

func cmdQuery(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	chunkSize := chunkSizeFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	dbPath, pairs, err := resolveDBPath(fs.Args())
	if err != nil {
		return err
	}
	if len(pairs) < 2 || len(pairs)%2 != 0 {
		return fmt.Errorf("usage: ggtrctl query <dbpath> <offset> <size> [<offset> <size> ...]")
	}

	db, err := openContainer(dbPath, *chunkSize)
	if err != nil {
		return err
	}

	infos := make([]ggtr.FileInfo, len(pairs)/2)
	for i := range infos {
		offset, err := strconv.ParseInt(pairs[2*i], 10, 64)
		if err != nil {
			return err
		}
		size, err := strconv.ParseInt(pairs[2*i+1], 10, 64)
		if err != nil {
			return err
		}
		infos[i] = ggtr.FileInfo{Offset: offset, Size: size}
	}

	if len(infos) == 1 {
		blob, err := db.Query(infos[0])
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(blob.Data)
		return err
	}

	list, err := db.QueryMany(infos)
	if err != nil {
		return err
	}
	for i := 0; i < list.Len(); i++ {
		data, err := list.At(i)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func cmdMove(args []string) error {
	fs := flag.NewFlagSet("move", flag.ExitOnError)
	chunkSize := chunkSizeFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	dbPath, rest, err := resolveDBPath(fs.Args())
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("usage: ggtrctl move <dbpath> <newpath>")
	}

	db, err := openContainer(dbPath, *chunkSize)
	if err != nil {
		return err
	}

	return db.MoveDatabase(rest[0])
}

func cmdStat(args []string) error {
	fs := flag.NewFlagSet("stat", flag.ExitOnError)
	chunkSize := chunkSizeFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	dbPath, rest, err := resolveDBPath(fs.Args())
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("usage: ggtrctl stat [<dbpath>]")
	}

	db, err := openContainer(dbPath, *chunkSize)
	if err != nil {
		return err
	}

	fmt.Printf("path: %s\ndata_end: %d\nregion_bytes: %d\n", db.DBPath(), db.DataEnd(), db.RegionSize())
	return nil
}
