package extract

// Package extract unpacks downloaded localization archives into the game
// directory. Zip archives are handled in-process; 7z archives are delegated
// to an external 7-Zip compatible binary. When the useful content is nested
// under a wrapper path inside the archive, extraction goes through a staging
// directory that is removed afterwards.
