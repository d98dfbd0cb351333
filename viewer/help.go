package viewer

func GetHelpText() (help string) {
	help = "Help:\n" +
		"\tusage: notegrid [-c config] [-e env file] [-d driver] [-t theme] [-a] [-h]\n" +
		"\t-c\tpath to a config file (yaml, toml or json)\n" +
		"\t-e\tpath to a .env file, defaults to ./.env when present\n" +
		"\t-d\tdatabase driver: mysql (default), sqlite or postgres\n" +
		"\t-t\tcolour theme: default, nord or solarized\n" +
		"\t-a\trender without colours\n" +
		"\t-h\tprints this message\n" +
		"Controls:\n" +
		"MOUSE\n" +
		"\tScroll up + down to move between rows\n" +
		"\tClick a cell to focus it\n" +
		"KEYBOARD\n" +
		"\t[WASD / HJKL / arrows] to move around cells\n" +
		"\t[PGUP / PGDOWN] to move a screen at a time\n" +
		"\t[ENTER or :] to edit the focused cell, [ENTER] again to write it, [ESC] to cancel\n" +
		"\t\tOnly notes are written to the database, and only whole numbers are accepted.\n" +
		"\t[P] to write the grid to a JSON file\n" +
		"\t[T] to cycle themes\n" +
		"\t[B] to toggle borders\n" +
		"\t[?] to toggle this help, [ESC] to close it\n" +
		"\t[Q or CTRL+C] to quit program\n"

	return help
}
