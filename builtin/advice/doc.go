/*
 * Copyright 2025 The AopKit Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package advice provides stock advice implementations separating common
// cross-cutting behaviors from business logic: access logging, invocation
// metrics, concurrency limiting, call timeouts, and JavaScript-scripted
// filtering.
//
// Package advice 提供常用增强实现，将公共横切行为从业务逻辑中分离出来：
// 访问日志、调用指标、并发限制、调用超时和 JavaScript 脚本过滤。
package advice
