package xdgicons

// SelectFile returns the file of the icon that best fits size at scale,
// considering only files accepted by filter. A nil filter accepts every
// file. It reports false only when filter rejects every file.
//
// Files at the requested scale are preferred. Failing that, a file of
// size*scale at scale 1 is looked for, and finally scale is ignored.
func (i *Icon) SelectFile(size, scale uint16, filter func(IconFile) bool) (IconFile, bool) {
	files := filterFiles(i.files, filter)

	if file, ok := fileForSize(withScale(files, scale), int(size)); ok {
		return file, true
	}

	if file, ok := fileForSize(withScale(files, 1), int(size)*int(scale)); ok {
		return file, true
	}

	return fileForSize(files, int(size))
}

// Returns the file that fits size best, preferring scale 1.
func (i *Icon) FileForSize(size uint16) IconFile {
	return i.FileForSizeScaled(size, 1)
}

// Returns the file that fits size and scale best.
func (i *Icon) FileForSizeScaled(size, scale uint16) IconFile {
	// without a filter there is always a file
	file, _ := i.SelectFile(size, scale, nil)
	return file
}

// Returns the file that fits size best among the files accepted by filter,
// ignoring scale.
func (i *Icon) FileForSizeFiltered(size uint16, filter func(IconFile) bool) (IconFile, bool) {
	return fileForSize(filterFiles(i.files, filter), int(size))
}

func filterFiles(files []IconFile, filter func(IconFile) bool) []IconFile {
	var kept []IconFile
	for _, file := range files {
		if filter == nil || filter(file) {
			kept = append(kept, file)
		}
	}
	return kept
}

func withScale(files []IconFile, scale uint16) []IconFile {
	var scaled []IconFile
	for _, file := range files {
		if file.Dir.Scale == scale {
			scaled = append(scaled, file)
		}
	}
	return scaled
}

// fileForSize picks, in order: an exact size, the first Threshold
// directory within reach, the smallest bigger size, the biggest size.
func fileForSize(files []IconFile, size int) (IconFile, bool) {
	if len(files) == 0 {
		return IconFile{}, false
	}

	for _, file := range files {
		if int(file.Dir.Size) == size {
			return file, true
		}
	}

	for _, file := range files {
		dir := file.Dir
		if dir.Type != Threshold {
			continue
		}
		if int(dir.Size)-int(dir.Threshold) <= size && size <= int(dir.Size)+int(dir.Threshold) {
			return file, true
		}
	}

	bigger := -1
	for idx, file := range files {
		if int(file.Dir.Size) > size && (bigger < 0 || file.Dir.Size < files[bigger].Dir.Size) {
			bigger = idx
		}
	}
	if bigger >= 0 {
		return files[bigger], true
	}

	// last of equally big files wins
	biggest := 0
	for idx, file := range files {
		if file.Dir.Size >= files[biggest].Dir.Size {
			biggest = idx
		}
	}
	return files[biggest], true
}
