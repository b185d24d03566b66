/**
# Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package cuda

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const testContext = ContextHandle(0xc0ffee)

func newDriverMock() *InterfaceMock {
	return &InterfaceMock{
		CtxCreateFunc: func(flags uint32, device Device) (ContextHandle, Result) {
			return testContext, SUCCESS
		},
		CtxPopCurrentFunc: func() (ContextHandle, Result) {
			return testContext, SUCCESS
		},
	}
}

func TestNewContext(t *testing.T) {
	testCases := []struct {
		description     string
		driver          *InterfaceMock
		expectedError   error
		expectedDestroy int
	}{
		{
			description: "create succeeds",
			driver:      newDriverMock(),
		},
		{
			description: "create fails",
			driver: &InterfaceMock{
				CtxCreateFunc: func(uint32, Device) (ContextHandle, Result) {
					return NilContext, ERROR_INVALID_DEVICE
				},
			},
			expectedError: &Error{Op: "cuCtxCreate_v2", Code: int(ERROR_INVALID_DEVICE)},
		},
		{
			description: "pop fails",
			driver: &InterfaceMock{
				CtxCreateFunc: func(uint32, Device) (ContextHandle, Result) {
					return testContext, SUCCESS
				},
				CtxPopCurrentFunc: func() (ContextHandle, Result) {
					return NilContext, ERROR_INVALID_CONTEXT
				},
			},
			expectedError:   &Error{Op: "cuCtxPopCurrent_v2", Code: int(ERROR_INVALID_CONTEXT)},
			expectedDestroy: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			ctx, err := NewContext(tc.driver, Device(1), CTX_SCHED_AUTO)
			require.Len(t, tc.driver.CtxDestroyCalls(), tc.expectedDestroy)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Nil(t, ctx)
				return
			}
			require.NoError(t, err)
			require.Equal(t, testContext, ctx.Handle())
			require.Equal(t, Device(1), ctx.Device())
			require.Len(t, tc.driver.CtxCreateCalls(), 1)
			require.Equal(t, Device(1), tc.driver.CtxCreateCalls()[0].Device)
		})
	}
}

func TestNewContextWithoutDriver(t *testing.T) {
	_, err := NewContext(nil, 0, CTX_SCHED_AUTO)
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestWithCurrent(t *testing.T) {
	testCases := []struct {
		description   string
		pushResult    Result
		popResult     Result
		fnError       error
		expectedCalls int
		expectedPops  int
		expectedError error
	}{
		{
			description:   "push, run, pop",
			expectedCalls: 1,
			expectedPops:  1,
		},
		{
			description:   "function error is returned",
			fnError:       fmt.Errorf("failed"),
			expectedCalls: 1,
			expectedPops:  1,
			expectedError: fmt.Errorf("failed"),
		},
		{
			description:   "push failure skips function",
			pushResult:    ERROR_INVALID_CONTEXT,
			expectedError: &Error{Op: "cuCtxPushCurrent_v2", Code: int(ERROR_INVALID_CONTEXT)},
		},
		{
			description:   "pop failure is returned",
			popResult:     ERROR_INVALID_CONTEXT,
			expectedCalls: 1,
			expectedPops:  1,
			expectedError: &Error{Op: "cuCtxPopCurrent_v2", Code: int(ERROR_INVALID_CONTEXT)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			driver := newDriverMock()
			ctx, err := NewContext(driver, 0, CTX_SCHED_AUTO)
			require.NoError(t, err)

			driver.CtxPushCurrentFunc = func(ContextHandle) Result { return tc.pushResult }
			driver.CtxPopCurrentFunc = func() (ContextHandle, Result) { return testContext, tc.popResult }
			popsBefore := len(driver.CtxPopCurrentCalls())

			var calls int
			err = ctx.WithCurrent(func() error {
				calls++
				return tc.fnError
			})

			require.Equal(t, tc.expectedCalls, calls)
			require.Len(t, driver.CtxPushCurrentCalls(), 1)
			require.Equal(t, testContext, driver.CtxPushCurrentCalls()[0].Ctx)
			require.Len(t, driver.CtxPopCurrentCalls(), popsBefore+tc.expectedPops)

			switch expected := tc.expectedError.(type) {
			case nil:
				require.NoError(t, err)
			case *Error:
				require.ErrorIs(t, err, expected)
			default:
				require.EqualError(t, err, expected.Error())
			}
		})
	}
}

func TestContextClose(t *testing.T) {
	driver := newDriverMock()
	ctx, err := NewContext(driver, 0, CTX_SCHED_AUTO)
	require.NoError(t, err)

	ctx.AddRef("b")
	ctx.AddRef("a")
	require.Equal(t, []string{"a", "b"}, ctx.Refs())

	err = ctx.Close()
	require.ErrorIs(t, err, ErrContextInUse)
	require.Equal(t, testContext, ctx.Handle())
	require.Empty(t, driver.CtxDestroyCalls())

	ctx.DelRef("a")
	ctx.DelRef("b")
	ctx.DelRef("unknown")
	require.Empty(t, ctx.Refs())

	require.NoError(t, ctx.Close())
	require.Equal(t, NilContext, ctx.Handle())
	require.Len(t, driver.CtxDestroyCalls(), 1)
	require.Equal(t, testContext, driver.CtxDestroyCalls()[0].Ctx)

	require.NoError(t, ctx.Close())
	require.Len(t, driver.CtxDestroyCalls(), 1)

	err = ctx.WithCurrent(func() error { return nil })
	require.ErrorIs(t, err, ErrContextReleased)
}

func TestContextCloseDestroyFailure(t *testing.T) {
	driver := newDriverMock()
	driver.CtxDestroyFunc = func(ContextHandle) Result { return ERROR_CONTEXT_IS_DESTROYED }

	ctx, err := NewContext(driver, 0, CTX_SCHED_AUTO)
	require.NoError(t, err)

	err = ctx.Close()
	require.ErrorIs(t, err, &Error{Op: "cuCtxDestroy_v2", Code: int(ERROR_CONTEXT_IS_DESTROYED)})
	require.Equal(t, testContext, ctx.Handle())
}

func TestContextMemory(t *testing.T) {
	driver := newDriverMock()
	driver.MemAllocFunc = func(size uint64) (DevicePtr, Result) {
		if size > 1024 {
			return 0, ERROR_OUT_OF_MEMORY
		}
		return DevicePtr(0x1000), SUCCESS
	}
	driver.MemcpyDtoHFunc = func(dst []byte, src DevicePtr) Result {
		for i := range dst {
			dst[i] = byte(i)
		}
		return SUCCESS
	}

	ctx, err := NewContext(driver, 0, CTX_SCHED_AUTO)
	require.NoError(t, err)

	_, err = ctx.MemAlloc(4096)
	require.ErrorIs(t, err, &Error{Op: "cuMemAlloc_v2", Code: int(ERROR_OUT_OF_MEMORY)})

	ptr, err := ctx.MemAlloc(16)
	require.NoError(t, err)
	require.Equal(t, DevicePtr(0x1000), ptr)

	dst := make([]byte, 4)
	require.NoError(t, ctx.CopyToHost(dst, ptr))
	require.Equal(t, []byte{0, 1, 2, 3}, dst)

	require.NoError(t, ctx.MemFree(ptr))
	require.Len(t, driver.MemFreeCalls(), 1)
	require.Equal(t, ptr, driver.MemFreeCalls()[0].Ptr)

	// Every memory call is made with the context current.
	require.Len(t, driver.CtxPushCurrentCalls(), 4)
}
