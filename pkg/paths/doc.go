// Package paths provides centralized path handling for red-panda.
//
// Everything red-panda creates on disk hangs off two roots derived from the
// target directory given on the command line:
//
//   - InstallationRoot: <target>/red-panda-hollow, where companion
//     repositories are cloned
//   - DotfilesRoot: <target>/.red-panda-dotfiles, the dotfiles checkout
//
// plus the user's home, the configuration home ($HOME/.config) that editor
// and multiplexer configs are linked into, and the environment marker file.
//
// # Usage
//
//	if err := paths.ValidateInstallDir(dir); err != nil {
//	    return err
//	}
//	p, err := paths.New(dir, cfg.Layout)
//	if err != nil {
//	    return err
//	}
//	root := p.InstallationRoot()   // /srv/env/red-panda-hollow
//	marker := p.MarkerFile()       // /home/user/.red_panda_setup.sh
//
// Directory names come from the [layout] configuration section; nothing in
// this package reads process-global state except HOME.
package paths
