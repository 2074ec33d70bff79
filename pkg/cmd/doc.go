// Package cmd provides the command-line interface for sqlalign.
//
// Commands are built by small constructor functions returning *cli.Command
// (urfave/cli/v3) and registered through the fx Module, mirroring how the
// rest of the application is wired.
//
// # Available Commands
//
//   - (no command): read a query from standard input and print it aligned
//   - fmt: format standard input, a single file, or every .sql file in a directory tree
//
// # Global Options
//
//   - --config, -c: configuration file (env SQLALIGN_CONFIG, default sqlalign.yaml)
//   - --verbose: enable debug logging on stderr
//   - --help, -h: display command help
//   - --version: display version information
//
// # Example Usage
//
//	cat query.sql | sqlalign            # align a query from stdin
//	sqlalign fmt query.sql              # print the aligned file
//	sqlalign fmt -w queries/            # rewrite every .sql file in place
//	sqlalign fmt -l queries/            # list files that are not aligned
//	sqlalign fmt -d query.sql           # show what would change
package cmd
