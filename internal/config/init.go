package config

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// exampleConfig is the study-notes site the tool was first used for.
const exampleConfig = `# Site configuration consumed by the documentation generator.
title: 学习笔记
description: 我自己的学习笔记, 自用

head:
  - link: /public/css/index.css

navbar:
  - text: 首页
    link: /
  - text: 面试题笔记
    link: /interview/
    items:
      - { text: 操作系统, link: /interview/os/ }
      - { text: 计算机网络, link: /interview/network/ }
      - { text: 数据库, link: /interview/db/ }
      - { text: Java面试题, link: /interview/java/ }
  - text: Go学习笔记
    link: /go/
    items:
      - { text: Go基础, link: /go/part0 }
      - { text: Go数据结构&包管理, link: /go/part1/ }
      - { text: Go面向接口&单元测试, link: /go/part2/ }
      - { text: Go并发编程, link: /go/part3/ }
      - { text: Go常用标准库, link: /go/part4/ }
  - text: External
    link: https://google.com

sidebar:
  /go/: ["", part0, part1, part2, part3, part4]
  /interview/: ["", os, network, db, java]

lastUpdatedLabel: 更新时间

# Options below are passed to the theme untouched.
theme:
  sidebarDepth: 4
  headerDepth: 4
`

// ExampleConfig returns the document written by Init.
func ExampleConfig() []byte { return []byte(exampleConfig) }

// Init writes an example configuration file, refusing to overwrite unless force.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).
			WithContext("file", path).
			Build()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to create config directory").Build()
		}
	}
	if err := os.WriteFile(path, ExampleConfig(), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("file", path).
			Build()
	}
	return nil
}
