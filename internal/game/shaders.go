package game

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Built-in copies of every shader pair; files in the configured shader
// directory take precedence so they can be edited without a rebuild.
//
//go:embed shaders/*.vert shaders/*.frag
var builtinShaders embed.FS

// Shader pairs, by base name.
const (
	shaderFlat3D     = "basic"   // flat color, perspective
	shaderTextured3D = "texture" // textured, perspective
	shaderFlat2D     = "color"   // flat color, NDC
	shaderTextured2D = "rect"    // textured sprite, NDC
)

// readShaderSource returns the NUL-terminated source for file, preferring dir.
func readShaderSource(dir, file string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		data, err = fs.ReadFile(builtinShaders, "shaders/"+file)
		if err != nil {
			return "", fmt.Errorf("shader %s: %w", file, err)
		}
	}
	return string(data) + "\x00", nil
}

// loadProgram reads, compiles and links the named vertex/fragment pair.
func loadProgram(dir, name string) (uint32, error) {
	vs, err := readShaderSource(dir, name+".vert")
	if err != nil {
		return 0, err
	}
	fsrc, err := readShaderSource(dir, name+".frag")
	if err != nil {
		return 0, err
	}
	prog, err := linkProgram(vs, fsrc)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return prog, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
