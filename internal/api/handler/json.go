package handler

import jsoniter "github.com/json-iterator/go"

// Codec JSON compartilhado pelos handlers
var json = jsoniter.ConfigCompatibleWithStandardLibrary
